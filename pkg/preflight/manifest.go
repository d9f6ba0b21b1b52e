package preflight

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/kdrblkbs/ayarla/pkg/errors"
	"github.com/kdrblkbs/ayarla/pkg/logging"
	"github.com/kdrblkbs/ayarla/pkg/paths"
	"github.com/kdrblkbs/ayarla/pkg/types"
)

// manifestFile mirrors manifest.toml. Pointers tell absent fields apart
// from zero values.
type manifestFile struct {
	ManifestItems *[]manifestItem `toml:"manifest_items"`
}

type manifestItem struct {
	Source      *string `toml:"source"`
	Destination *string `toml:"destination"`
	Force       *bool   `toml:"force"`
}

// ParseManifest decodes manifest text. Every item needs a non-empty source
// and destination, both relative and staying inside their base directory;
// force defaults to false. Unknown keys are logged and otherwise ignored.
func ParseManifest(content string) (types.Manifest, error) {
	logger := logging.GetLogger("preflight")

	var raw manifestFile
	decoder := toml.NewDecoder(strings.NewReader(content))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&raw); err != nil {
		var strictErr *toml.StrictMissingError
		if !stderrors.As(err, &strictErr) {
			return types.Manifest{}, parseError(err)
		}

		logger.Warn().Str("unknown", strictErr.String()).Msg("Manifest contains unknown keys, ignoring them")
		raw = manifestFile{}
		if err := toml.Unmarshal([]byte(content), &raw); err != nil {
			return types.Manifest{}, parseError(err)
		}
	}

	if raw.ManifestItems == nil {
		return types.Manifest{}, errors.New(errors.ErrManifestParse,
			"Failed to parse manifest: missing field manifest_items")
	}

	manifest := types.Manifest{Items: make([]types.ManifestItem, 0, len(*raw.ManifestItems))}
	var problems []string
	for i, item := range *raw.ManifestItems {
		if missing := item.missingFields(); len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("manifest_items[%d] is missing %s", i, strings.Join(missing, " and ")))
			continue
		}
		if err := paths.CheckRelative(*item.Source); err != nil {
			problems = append(problems, fmt.Sprintf("manifest_items[%d] source %v", i, err))
		}
		if err := paths.CheckRelative(*item.Destination); err != nil {
			problems = append(problems, fmt.Sprintf("manifest_items[%d] destination %v", i, err))
		}

		parsed := types.ManifestItem{
			Source:      *item.Source,
			Destination: *item.Destination,
		}
		if item.Force != nil {
			parsed.Force = *item.Force
		}
		manifest.Items = append(manifest.Items, parsed)
	}

	if len(problems) > 0 {
		return types.Manifest{}, errors.Newf(errors.ErrManifestParse,
			"Failed to parse manifest: %s", strings.Join(problems, "; ")).
			WithDetail("problems", problems)
	}

	logger.Debug().Int("items", manifest.Len()).Msg("Manifest parsed")
	return manifest, nil
}

func (m manifestItem) missingFields() []string {
	var missing []string
	if m.Source == nil || *m.Source == "" {
		missing = append(missing, "source")
	}
	if m.Destination == nil || *m.Destination == "" {
		missing = append(missing, "destination")
	}
	return missing
}

// parseError wraps a go-toml error, keeping its position when it has one
func parseError(err error) error {
	ayErr := errors.Wrap(err, errors.ErrManifestParse, "Failed to parse manifest")

	var decodeErr *toml.DecodeError
	if stderrors.As(err, &decodeErr) {
		row, column := decodeErr.Position()
		ayErr.WithDetail("line", row).WithDetail("column", column)
	}
	return ayErr
}
