package cli

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/lockbox/internal/config"
	"github.com/mrz1836/lockbox/internal/constants"
	"github.com/mrz1836/lockbox/internal/crypto"
	"github.com/mrz1836/lockbox/internal/errors"
	"github.com/mrz1836/lockbox/internal/vault"
)

// Sentinel errors for vault commands.
var (
	errNoCredential      = stderrors.New("no credential stored for user")
	errPasswordMismatch  = stderrors.New("passwords do not match")
	errPasswordEmpty     = stderrors.New("password cannot be empty")
	errNonInteractiveTTY = stderrors.New("no terminal available; set " + constants.EnvPassword + " or pipe the secret on stdin")
)

// AddVaultCommand adds the vault command with subcommands to the root command.
func AddVaultCommand(rootCmd *cobra.Command) {
	vaultCmd := &cobra.Command{
		Use:   "vault",
		Short: "Encrypted credentials in the system keyring",
		Long: `Store, fetch and delete credentials in the system keyring. Secrets
are encrypted with a key derived from the master password and the
configured salt before they reach the keyring, and decrypted after
they are read back.

The master password is taken from ` + constants.EnvPassword + ` when set,
otherwise prompted without echo.`,
	}

	vaultCmd.AddCommand(newVaultGetCmd())
	vaultCmd.AddCommand(newVaultSetCmd())
	vaultCmd.AddCommand(newVaultDeleteCmd())
	vaultCmd.AddCommand(newVaultGenerateCmd())

	rootCmd.AddCommand(vaultCmd)
}

// openVault loads configuration, derives the encryption key from the
// master password, and returns the process-wide vault for the
// configured service.
func openVault(cmd *cobra.Command) (*vault.Vault, *config.Config, error) {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	if cfg.Vault.Salt == "" {
		return nil, nil, fmt.Errorf("%w: set vault.salt in the configuration or LOCKBOX_VAULT_SALT", errors.ErrSaltRequired)
	}

	master := os.Getenv(constants.EnvPassword)
	if master == "" {
		master, err = promptPassword(cmd, "Master password: ")
		if err != nil {
			return nil, nil, err
		}
	}
	if master == "" {
		return nil, nil, errPasswordEmpty
	}

	cypher := crypto.NewCypher()
	if err := cypher.SetPassword([]byte(master), []byte(cfg.Vault.Salt)); err != nil {
		return nil, nil, err
	}
	return vault.NewWithLogger(cfg.Vault.Service, cypher, GetLogger()), cfg, nil
}

// promptPassword reads a password without echo when stdin is a
// terminal, and falls back to reading one line from stdin otherwise so
// secrets can be piped in.
func promptPassword(cmd *cobra.Command, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", errors.Wrap(err, "failed to read password")
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", errNonInteractiveTTY
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newVaultGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <username>",
		Short: "Fetch and decrypt a credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := openVault(cmd)
			if err != nil {
				return err
			}

			secret, ok, err := v.Get(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return errors.Wrapf(errNoCredential, "%q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}
}

func newVaultSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <username> [secret]",
		Short: "Encrypt and store a credential",
		Long: `Encrypt a credential and store it in the system keyring. When the
secret argument is omitted it is prompted for twice without echo.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := openVault(cmd)
			if err != nil {
				return err
			}

			var secret string
			if len(args) == 2 {
				secret = args[1]
			} else {
				secret, err = promptPassword(cmd, "Secret: ")
				if err != nil {
					return err
				}
				confirm, err := promptPassword(cmd, "Confirm secret: ")
				if err != nil {
					return err
				}
				if secret != confirm {
					return errPasswordMismatch
				}
			}
			if secret == "" {
				return errPasswordEmpty
			}

			if err := v.Set(args[0], secret); err != nil {
				return err
			}
			logger := GetLogger()
			logger.Info().Str("username", args[0]).Msg("credential stored")
			return nil
		},
	}
}

func newVaultDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete a credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := openVault(cmd)
			if err != nil {
				return err
			}
			if err := v.Delete(args[0]); err != nil {
				return err
			}
			logger := GetLogger()
			logger.Info().Str("username", args[0]).Msg("credential deleted")
			return nil
		},
	}
}

func newVaultGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [length]",
		Short: "Generate a random password",
		Long: `Generate a random password from the printable ASCII charset. The
length defaults to vault.password_length from the configuration.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}

			length := cfg.Vault.PasswordLength
			if len(args) == 1 {
				length, err = strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("%w: length %q is not a number", errors.ErrInvalidArgument, args[0])
				}
			}

			password, err := crypto.NewCypher().Generate(length)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), password)
			return nil
		},
	}
}
