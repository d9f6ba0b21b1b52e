package cli

// Message constants
const (
	MsgRootShort = "ayarla manages your dotfiles/settings"
	MsgRootLong  = `ayarla links the files in a settings directory into your home directory,
as described by the manifest.toml at the root of that directory.

See 'ayarla help quickstart' to get going and 'ayarla help manifest'
for the manifest format.`

	MsgBootstrapShort = "Bootstraps everything in your manifest within your settings directory"
	MsgBootstrapLong  = `Bootstrap validates the settings directory, reads its manifest.toml and
creates a symbolic link in your home directory for every manifest item.

Existing destinations are left untouched unless the item sets force = true.
Items whose source is missing are skipped and reported as a warning; the
command still succeeds.`
	MsgBootstrapExample = `  # Link everything from ~/settings
  ayarla bootstrap -s ~/settings

  # Same, using the short alias
  ayarla lan -s ~/settings

  # Use settings_directory from ~/.config/ayarla/config.toml
  ayarla bootstrap`

	MsgNoSettingsDirectory = "no settings directory given: pass --settings-directory or set settings_directory in %s"
)
