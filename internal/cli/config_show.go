package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/lockbox/internal/config"
	"github.com/mrz1836/lockbox/internal/logging"
)

// AddConfigCommand adds the config command with subcommands to the root command.
func AddConfigCommand(rootCmd *cobra.Command) {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect lockbox configuration",
	}

	configCmd.AddCommand(newConfigShowCmd())

	rootCmd.AddCommand(configCmd)
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the configuration after merging defaults, the global config
file, the project config file and environment variables. The salt is
redacted in the output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}

			// The salt is not displayed: it is the one config value
			// that must not leak into terminal scrollback or logs.
			display := *cfg
			if display.Vault.Salt != "" {
				display.Vault.Salt = logging.RedactedValue
			}

			out := cmd.OutOrStdout()
			switch outputFormat(cmd) {
			case OutputJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(display)
			case OutputYAML:
				return yaml.NewEncoder(out).Encode(display)
			default:
				fmt.Fprintf(out, "vault.service: %s\n", display.Vault.Service)
				fmt.Fprintf(out, "vault.salt: %s\n", display.Vault.Salt)
				fmt.Fprintf(out, "vault.password_length: %d\n", display.Vault.PasswordLength)
				fmt.Fprintf(out, "lock.non_blocking: %t\n", display.Lock.NonBlocking)
				fmt.Fprintf(out, "log.level: %s\n", display.Log.Level)
				fmt.Fprintf(out, "log.file: %t\n", display.Log.File)
				return nil
			}
		},
	}
}
