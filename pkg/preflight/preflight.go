package preflight

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"syscall"

	"github.com/kdrblkbs/ayarla/pkg/errors"
	"github.com/kdrblkbs/ayarla/pkg/logging"
	"github.com/kdrblkbs/ayarla/pkg/types"
)

// Check validates settingsDirectory and parses its manifest
func Check(fsys types.FS, settingsDirectory string) (types.Location, types.Manifest, error) {
	logger := logging.GetLogger("preflight")
	done := logging.LogOperationStart(logger, "preflight")
	defer done()

	loc, err := Validate(fsys, settingsDirectory)
	if err != nil {
		return types.Location{}, types.Manifest{}, err
	}

	manifest, err := ParseManifest(loc.ManifestContent)
	if err != nil {
		return types.Location{}, types.Manifest{}, err
	}

	logger.Info().
		Str("settingsDir", loc.SettingsDir).
		Int("items", manifest.Len()).
		Msg("Settings directory ready")

	return loc, manifest, nil
}

// Validate runs the directory and manifest-content checks, returning the
// absolute settings directory and the raw manifest text.
func Validate(fsys types.FS, settingsDirectory string) (types.Location, error) {
	logger := logging.GetLogger("preflight")

	info, err := fsys.Stat(settingsDirectory)
	if err != nil {
		// a path running through a regular file does not exist either
		if os.IsNotExist(err) || stderrors.Is(err, syscall.ENOTDIR) {
			return types.Location{}, errors.Newf(errors.ErrNotFound, "Directory does not exist: %s", settingsDirectory).
				WithDetail("path", settingsDirectory)
		}
		return types.Location{}, errors.Wrapf(err, errors.ErrFileAccess, "Cannot access %s", settingsDirectory)
	}
	logger.Trace().Str("path", settingsDirectory).Msg("exists")

	if !info.IsDir() {
		return types.Location{}, errors.Newf(errors.ErrNotADirectory, "Path is not a directory: %s", settingsDirectory).
			WithDetail("path", settingsDirectory)
	}
	logger.Trace().Str("path", settingsDirectory).Msg("is a directory")

	entries, err := fsys.ReadDir(settingsDirectory)
	if err != nil {
		return types.Location{}, errors.Wrapf(err, errors.ErrFileAccess, "Cannot read directory %s", settingsDirectory)
	}

	if len(entries) == 0 {
		return types.Location{}, errors.Newf(errors.ErrEmptyDirectory, "Directory is empty: %s", settingsDirectory).
			WithDetail("path", settingsDirectory)
	}

	if !hasManifest(entries) {
		return types.Location{}, errors.Newf(errors.ErrManifestMissing,
			"Directory does not contain %s: %s", types.ManifestFileName, settingsDirectory).
			WithDetail("path", settingsDirectory)
	}

	if len(entries) == 1 {
		return types.Location{}, errors.Newf(errors.ErrNothingToInstall,
			"Directory only contains %s: %s", types.ManifestFileName, settingsDirectory).
			WithDetail("path", settingsDirectory)
	}
	logger.Trace().Int("entries", len(entries)).Msg("has something to install")

	absDir, err := filepath.Abs(settingsDirectory)
	if err != nil {
		return types.Location{}, errors.Wrapf(err, errors.ErrPathResolve, "Cannot resolve %s", settingsDirectory)
	}
	loc := types.Location{SettingsDir: absDir}

	content, err := fsys.ReadFile(loc.ManifestPath())
	if err != nil {
		return types.Location{}, errors.Wrapf(err, errors.ErrFileAccess, "Cannot read %s", loc.ManifestPath())
	}

	if len(content) == 0 {
		return types.Location{}, errors.Newf(errors.ErrEmptyManifest,
			"%s in %s is empty", types.ManifestFileName, settingsDirectory).
			WithDetail("path", loc.ManifestPath())
	}
	loc.ManifestContent = string(content)

	return loc, nil
}

// hasManifest reports whether entries hold a manifest file. A directory
// named manifest.toml does not count.
func hasManifest(entries []os.DirEntry) bool {
	for _, entry := range entries {
		if entry.Name() == types.ManifestFileName && !entry.IsDir() {
			return true
		}
	}
	return false
}
