package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/kayz/gptautocli/internal/config"
	"github.com/kayz/gptautocli/internal/debug"
	"github.com/kayz/gptautocli/internal/errors"
	"github.com/kayz/gptautocli/internal/logger"
	"github.com/kayz/gptautocli/internal/ui"
	"github.com/kayz/gptautocli/internal/verify"
)

var (
	logLevel   string
	configPath string
	plainUI    bool
)

// Construction hooks, replaced in tests.
var (
	newUI       = func() ui.UserInterface { return ui.New(plainUI) }
	newVerifier = func() verify.Verifier { return verify.NewOpenAI() }
)

var rootCmd = &cobra.Command{
	Use:   "gptautocli",
	Short: "Shell assistant configuration",
	Long: `gptautocli runs shell commands on your behalf and asks for confirmation
before running risky ones.

On first run it asks for your OpenAI API key, checks that the key works,
and asks how risky a command may be before it needs your confirmation.
Both answers are stored in ~/.gptautocli.config.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBootstrap,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Parse and set log level
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		if debug.Enabled() && level > logger.DebugLevel {
			level = logger.DebugLevel
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info",
		"Log level: trace, debug, info, warn, error, fatal, panic")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Configuration file (default ~/.gptautocli.config)")
	rootCmd.PersistentFlags().BoolVar(&plainUI, "plain", false,
		"Use line-based prompts even on a terminal")
}

// openStore returns the store for --config or the default path.
func openStore() (*config.Store, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return config.NewStore(path), nil
}

// Execute runs the root command and exits with the resulting status.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		var shown shownError
		if !stderrors.As(err, &shown) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(errors.ExitCode(err))
	}
}

// shownError marks an error the user interface has already reported.
type shownError struct {
	err error
}

func (e shownError) Error() string { return e.err.Error() }

func (e shownError) Unwrap() error { return e.err }
