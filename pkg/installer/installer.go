// Package installer links manifest items from a settings directory into a
// base directory.
//
// Items are handled one at a time in manifest order. A missing source only
// degrades the result to types.StatusWarn. Any filesystem failure stops the
// run immediately; links created before it are left in place.
package installer

import (
	"os"
	"path/filepath"

	"github.com/kdrblkbs/ayarla/pkg/errors"
	"github.com/kdrblkbs/ayarla/pkg/logging"
	"github.com/kdrblkbs/ayarla/pkg/paths"
	"github.com/kdrblkbs/ayarla/pkg/types"
)

// Options holds the inputs for Install
type Options struct {
	FS types.FS
	// BaseDir is where destinations are resolved, normally $HOME
	BaseDir string
	// SettingsDir is where sources are resolved
	SettingsDir string
	Manifest    types.Manifest
}

// Install creates a symlink for every manifest item and returns the
// aggregate status.
func Install(opts Options) (types.Status, error) {
	logger := logging.GetLogger("installer")
	done := logging.LogOperationStart(logger, "install")
	defer done()

	status := types.StatusOk
	for i, item := range opts.Manifest.Items {
		itemStatus, err := installItem(opts, item)
		if err != nil {
			logger.Error().
				Err(err).
				Int("item", i).
				Str("source", item.Source).
				Str("destination", item.Destination).
				Msg("Installation aborted")
			return status, err
		}
		status = status.Merge(itemStatus)
	}

	logger.Info().
		Int("items", opts.Manifest.Len()).
		Stringer("status", status).
		Msg("Installation finished")
	return status, nil
}

func installItem(opts Options, item types.ManifestItem) (types.Status, error) {
	logger := logging.GetLogger("installer").With().
		Str("source", item.Source).
		Str("destination", item.Destination).
		Logger()

	for _, p := range []string{item.Source, item.Destination} {
		if err := paths.CheckRelative(p); err != nil {
			return types.StatusOk, errors.Wrap(err, errors.ErrInvalidInput, "Refusing manifest item").
				WithDetail("source", item.Source).
				WithDetail("destination", item.Destination)
		}
	}

	sourcePath := filepath.Join(opts.SettingsDir, item.Source)
	if _, err := opts.FS.Stat(sourcePath); err != nil {
		logger.Warn().Str("path", sourcePath).Msg("Source does not exist, skipping")
		return types.StatusWarn, nil
	}

	destinationPath := filepath.Join(opts.BaseDir, item.Destination)

	// Lstat so a dangling link at the destination still counts as present
	if info, err := opts.FS.Lstat(destinationPath); err == nil {
		if !item.Force {
			logger.Debug().Msg("Destination exists, skipping")
			return types.StatusOk, nil
		}

		if err := removeDestination(opts.FS, destinationPath, info); err != nil {
			return types.StatusOk, err
		}
		logger.Debug().Msg("Removed existing destination")
	} else if !os.IsNotExist(err) {
		return types.StatusOk, errors.Wrapf(err, errors.ErrFileAccess, "Cannot access %s", destinationPath).
			WithDetail("path", destinationPath)
	}

	parent := filepath.Dir(destinationPath)
	if err := opts.FS.MkdirAll(parent, 0755); err != nil {
		return types.StatusOk, errors.Wrapf(err, errors.ErrDirCreate, "Failed to create %s", parent).
			WithDetail("path", parent)
	}

	original, err := opts.FS.EvalSymlinks(sourcePath)
	if err != nil {
		return types.StatusOk, errors.Wrapf(err, errors.ErrPathResolve, "Failed to resolve %s", sourcePath).
			WithDetail("path", sourcePath)
	}

	if err := opts.FS.Symlink(original, destinationPath); err != nil {
		return types.StatusOk, errors.Wrapf(err, errors.ErrSymlinkCreate, "Failed to link %s to %s", destinationPath, original).
			WithDetail("source", original).
			WithDetail("destination", destinationPath)
	}

	logger.Debug().Str("target", original).Msg("Linked")
	return types.StatusOk, nil
}

// removeDestination clears path, recursively when it is a real directory.
// A symlink to a directory is removed as a single entry.
func removeDestination(fsys types.FS, path string, info os.FileInfo) error {
	var err error
	if info.IsDir() {
		err = fsys.RemoveAll(path)
	} else {
		err = fsys.Remove(path)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "Failed to remove %s", path).
			WithDetail("path", path)
	}
	return nil
}
