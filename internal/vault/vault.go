// Package vault stores credentials in the system keyring, encrypting
// them before they are written and decrypting them after they are read.
// Secrets therefore never reach the credential store in the clear.
package vault

import (
	stderrors "errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/zalando/go-keyring"

	"github.com/mrz1836/lockbox/internal/crypto"
	"github.com/mrz1836/lockbox/internal/errors"
	"github.com/mrz1836/lockbox/internal/registry"
)

// Vault is an encrypted view over one service's credentials in the
// system keyring.
type Vault struct {
	service string
	cypher  *crypto.Cypher
	log     zerolog.Logger
}

// New returns a Vault for service using cypher for encryption.
func New(service string, cypher *crypto.Cypher) *Vault {
	return &Vault{service: service, cypher: cypher, log: zerolog.Nop()}
}

// NewWithLogger is New with a logger for debug events.
func NewWithLogger(service string, cypher *crypto.Cypher, log zerolog.Logger) *Vault {
	return &Vault{service: service, cypher: cypher, log: log}
}

// Default returns the process-wide Vault for service, creating it on
// first use. Each service name has its own singleton.
func Default(service string, cypher *crypto.Cypher) *Vault {
	inst := registry.GetOrCreate("vault.Vault:"+service, func() any {
		return New(service, cypher)
	})
	return inst.(*Vault)
}

// Get fetches and decrypts the secret stored for username. A missing
// secret is not an error: Get reports ok=false and skips decryption.
// A stored value that fails authentication surfaces
// errors.ErrInvalidToken; other store failures wrap errors.ErrStoreRead.
func (v *Vault) Get(username string) (secret string, ok bool, err error) {
	stored, err := keyring.Get(v.service, username)
	if err != nil {
		if stderrors.Is(err, keyring.ErrNotFound) {
			v.log.Debug().Str("service", v.service).Str("username", username).Msg("no stored credential")
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %w", errors.ErrStoreRead, err)
	}

	plaintext, err := v.cypher.Decrypt(stored)
	if err != nil {
		return "", false, err
	}
	return string(plaintext), true, nil
}

// Set encrypts secret and stores it for username, replacing any
// existing value. Store failures wrap errors.ErrStoreWrite.
func (v *Vault) Set(username, secret string) error {
	token, err := v.cypher.Encrypt([]byte(secret))
	if err != nil {
		return err
	}
	if err := keyring.Set(v.service, username, token); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrStoreWrite, err)
	}
	v.log.Debug().Str("service", v.service).Str("username", username).Msg("credential stored")
	return nil
}

// Delete removes the secret stored for username. Store failures,
// including deleting a credential that does not exist, wrap
// errors.ErrStoreDelete.
func (v *Vault) Delete(username string) error {
	if err := keyring.Delete(v.service, username); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrStoreDelete, err)
	}
	v.log.Debug().Str("service", v.service).Str("username", username).Msg("credential deleted")
	return nil
}
