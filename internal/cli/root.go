package cli

import (
	"embed"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kdrblkbs/ayarla/internal/version"
	"github.com/kdrblkbs/ayarla/pkg/cobrax/topics"
	"github.com/kdrblkbs/ayarla/pkg/config"
	"github.com/kdrblkbs/ayarla/pkg/filesystem"
	"github.com/kdrblkbs/ayarla/pkg/logging"
	"github.com/kdrblkbs/ayarla/pkg/paths"
	"github.com/kdrblkbs/ayarla/pkg/types"
	"github.com/kdrblkbs/ayarla/pkg/ui"
)

//go:embed help/*.md
var helpFiles embed.FS

// app carries state shared by every command of one invocation
type app struct {
	verbosity int
	cfg       *config.Config
	fs        types.FS
}

// Execute runs ayarla with the process arguments and returns its exit code
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

// run executes the command line in args. Failures are rendered to stderr
// honouring output.color when the configuration got loaded.
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp()
	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		_ = a.rendererFor(stderr).RenderError(err)
		return 1
	}
	return 0
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func newApp() *app {
	return &app{fs: filesystem.NewOS()}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ayarla",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newBootstrapCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newManCmd())

	helpFS, err := fs.Sub(helpFiles, "help")
	if err == nil {
		renderer := topics.Renderer(&topics.PlainRenderer{})
		if ui.DetectFormat(rootCmd.OutOrStdout()) == ui.FormatTerminal {
			renderer = topics.NewGlamourRenderer()
		}
		// Help topics are optional; failing to load them leaves cobra's help in place
		_, _ = topics.InitializeWithOptions(rootCmd, helpFS, topics.Options{Renderer: renderer})
	}

	return rootCmd
}

// setup loads configuration and configures logging before any command runs
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(paths.ConfigFile())
	if err != nil {
		return err
	}
	a.cfg = cfg

	logFile := ""
	if cfg.Logging.File {
		logFile = paths.LogFile()
	}
	logging.SetupLogger(a.verbosity, logFile)
	log.Debug().Str("command", cmd.Name()).Msg("Command started")

	return nil
}

// renderer returns a renderer for the command's output honouring output.color
func (a *app) renderer(cmd *cobra.Command) *ui.Renderer {
	return a.rendererFor(cmd.OutOrStdout())
}

// rendererFor falls back to auto detection until the config is loaded
func (a *app) rendererFor(output io.Writer) *ui.Renderer {
	format := ui.FormatAuto
	if a.cfg != nil {
		format = ui.FormatForColor(string(a.cfg.Output.Color))
	}
	return ui.NewRenderer(format, output)
}
