package cli

import (
	"github.com/spf13/cobra"

	"github.com/kdrblkbs/ayarla/pkg/errors"
	"github.com/kdrblkbs/ayarla/pkg/installer"
	"github.com/kdrblkbs/ayarla/pkg/logging"
	"github.com/kdrblkbs/ayarla/pkg/paths"
	"github.com/kdrblkbs/ayarla/pkg/preflight"
)

func newBootstrapCmd(a *app) *cobra.Command {
	var settingsDirectory string

	cmd := &cobra.Command{
		Use:     "bootstrap",
		Aliases: []string{"lan"},
		Short:   MsgBootstrapShort,
		Long:    MsgBootstrapLong,
		Example: MsgBootstrapExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.bootstrap")

			home, err := paths.HomeDir()
			if err != nil {
				return err
			}

			dir := settingsDirectory
			if dir == "" && a.cfg != nil {
				dir = a.cfg.SettingsDirectory
			}
			if dir == "" {
				return errors.Newf(errors.ErrInvalidInput, MsgNoSettingsDirectory, paths.ConfigFile())
			}
			dir = paths.ExpandHome(dir)

			logger.Info().
				Str("settingsDir", dir).
				Str("home", home).
				Msg("Starting bootstrap")

			loc, manifest, err := preflight.Check(a.fs, dir)
			if err != nil {
				return err
			}

			status, err := installer.Install(installer.Options{
				FS:          a.fs,
				BaseDir:     home,
				SettingsDir: loc.SettingsDir,
				Manifest:    manifest,
			})
			if err != nil {
				return err
			}

			return a.renderer(cmd).RenderStatus(status, loc.SettingsDir)
		},
	}

	cmd.Flags().StringVarP(&settingsDirectory, "settings-directory", "s", "", "Directory holding manifest.toml and your settings")

	return cmd
}
