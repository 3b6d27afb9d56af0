package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kayz/gptautocli/internal/config"
	"github.com/kayz/gptautocli/internal/logger"
	"github.com/kayz/gptautocli/internal/setup"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure the API key and command risk threshold",
	Long: `Configure any missing values in the configuration file.

This command:
  - Asks for an OpenAI API key and verifies it with one live request
  - Asks for the command risk threshold (0-6)

Values already present in the file are kept as they are. Remove one with
"gptautocli config unset <key>" to be asked again.

Examples:
  gptautocli setup
  gptautocli setup --config ./test.config --plain`,
	Args: cobra.NoArgs,
	RunE: runBootstrap,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	cfg, err := store.Load()
	if err != nil {
		return err
	}
	logger.Debug("[Setup] loaded %s (%d keys)", store.Path(), len(cfg.Keys()))

	flow := setup.New(newUI(), store, newVerifier())
	res, err := flow.Run(cmd.Context(), cfg)
	if err != nil {
		logger.Debug("[Setup] api key: %s, command risk: %s", res.APIKey, res.CommandRisk)
		return shownError{err: err}
	}

	printReady(cmd.OutOrStdout(), cmd.ErrOrStderr(), store.Path(), cfg)
	return nil
}

// printReady summarizes the stored configuration. Stored values are never
// re-validated, so an unparsable threshold only produces a warning.
func printReady(w, errOut io.Writer, path string, cfg *config.Config) {
	fmt.Fprintf(w, "Configuration ready: %s\n", path)

	risk, _, err := cfg.Risk()
	if err != nil {
		raw, _ := cfg.Get(config.KeyCommandRisk)
		logger.Warn("[Setup] stored %s %q is not a valid threshold: %v", config.KeyCommandRisk, raw, err)
		fmt.Fprintf(errOut, "⚠ Stored %s %q is not a number between %d and %d. Edit %s or run \"gptautocli config unset %s\" to choose again.\n",
			config.KeyCommandRisk, raw, config.MinRisk, config.MaxRisk, path, config.KeyCommandRisk)
		return
	}

	switch risk {
	case config.MinRisk:
		fmt.Fprintln(w, "Every command will ask for confirmation.")
	case config.MaxRisk:
		fmt.Fprintln(w, "Commands will run without confirmation.")
	default:
		fmt.Fprintf(w, "Commands with a risk score of %d or higher will ask for confirmation.\n", risk)
	}
}
