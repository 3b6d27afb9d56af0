package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kayz/gptautocli/internal/config"
	"github.com/kayz/gptautocli/internal/logger"
)

var configOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or edit the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), store.Path())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration with the API key masked",
	Long: `Print the configuration with the API key masked.

Examples:
  gptautocli config show
  gptautocli config show -o yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a key so the next run asks for it again",
	Long: `Remove a key so the next run asks for it again.

Examples:
  gptautocli config unset OpenAI_API_Key
  gptautocli config unset Command_Risk`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigUnset,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configUnsetCmd)

	configShowCmd.Flags().StringVarP(&configOutput, "output", "o", "ini", "Output format: ini, yaml")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	cfg, err := store.Load()
	if err != nil {
		return err
	}

	masked := config.NewMemory()
	values := cfg.Values()
	for k, v := range values {
		if k == config.KeyAPIKey {
			v = maskSecret(v)
			values[k] = v
		}
		if err := masked.Set(k, v); err != nil {
			return err
		}
	}

	var out []byte
	switch strings.ToLower(configOutput) {
	case "ini":
		out, err = masked.Encode()
	case "yaml", "yml":
		out, err = yaml.Marshal(values)
	default:
		return fmt.Errorf("unsupported output format %q (use ini or yaml)", configOutput)
	}
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	key := args[0]

	store, err := openStore()
	if err != nil {
		return err
	}
	cfg, err := store.Load()
	if err != nil {
		return err
	}
	if !cfg.Has(key) {
		return fmt.Errorf("%s is not set in %s", key, store.Path())
	}

	cfg.Delete(key)
	if err := store.Save(cfg); err != nil {
		return err
	}
	logger.Debug("[Config] removed %s from %s", key, store.Path())
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s. It will be requested on the next run.\n", key)
	return nil
}

// maskSecret keeps a short prefix and suffix of long secrets.
func maskSecret(s string) string {
	if len(s) <= 10 {
		return strings.Repeat("*", len(s))
	}
	return s[:3] + strings.Repeat("*", 6) + s[len(s)-4:]
}
