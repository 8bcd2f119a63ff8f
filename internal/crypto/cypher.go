// Package crypto provides symmetric key derivation and authenticated
// encryption for the credential vault. Keys are derived from a secret
// and salt with PBKDF2-HMAC-SHA256, then Base64-encoded into the
// fixed-size key format the Fernet token cypher expects.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"math/big"

	"github.com/fernet/fernet-go"
	"golang.org/x/crypto/pbkdf2"

	"github.com/mrz1836/lockbox/internal/errors"
)

// Key derivation parameters. These are fixed so keys derived from the
// same secret and salt stay stable across processes and releases.
const (
	kdfIterations = 200000
	kdfKeyLength  = 32
)

// passwordCharset is the alphabet used by Generate: upper and lower
// case letters, digits, and ASCII punctuation.
const passwordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Symmetric derives encryption keys from secrets using a fixed salt.
type Symmetric struct {
	salt []byte
}

// NewSymmetric returns a Symmetric bound to salt.
func NewSymmetric(salt []byte) *Symmetric {
	return &Symmetric{salt: salt}
}

// Key derives a new key from secret and encodes it with the Base64
// alphabet. The result is a valid token-cypher key.
func (s *Symmetric) Key(secret []byte) []byte {
	derived := pbkdf2.Key(secret, s.salt, kdfIterations, kdfKeyLength, sha256.New)
	out := make([]byte, base64.URLEncoding.EncodedLen(len(derived)))
	base64.URLEncoding.Encode(out, derived)
	return out
}

// Cypher encrypts and decrypts values with a symmetrically derived key.
// SetPassword must be called before Encrypt or Decrypt.
type Cypher struct {
	key *fernet.Key
}

// NewCypher returns a Cypher with no key set.
func NewCypher() *Cypher {
	return &Cypher{}
}

// SetPassword derives the encryption key from secret and salt.
func (c *Cypher) SetPassword(secret, salt []byte) error {
	key, err := fernet.DecodeKey(string(NewSymmetric(salt).Key(secret)))
	if err != nil {
		return errors.Wrap(err, "failed to decode derived key")
	}
	c.key = key
	return nil
}

// Encrypt encrypts plaintext into an opaque, text-safe token.
func (c *Cypher) Encrypt(plaintext []byte) (string, error) {
	if c.key == nil {
		return "", errors.ErrKeyNotSet
	}
	tok, err := fernet.EncryptAndSign(plaintext, c.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to encrypt value")
	}
	return string(tok), nil
}

// Decrypt authenticates and decrypts a token produced by Encrypt.
// Tampered tokens and tokens encrypted under a different key fail with
// errors.ErrInvalidToken.
func (c *Cypher) Decrypt(token string) ([]byte, error) {
	if c.key == nil {
		return nil, errors.ErrKeyNotSet
	}
	// A negative ttl disables token expiry checking.
	msg := fernet.VerifyAndDecrypt([]byte(token), -1, []*fernet.Key{c.key})
	if msg == nil {
		return nil, errors.ErrInvalidToken
	}
	return msg, nil
}

// Generate returns a random password of the given length drawn from
// the printable ASCII charset.
func (c *Cypher) Generate(length int) (string, error) {
	if length <= 0 {
		return "", errors.Wrapf(errors.ErrValueOutOfRange, "password length %d", length)
	}
	charsetLen := big.NewInt(int64(len(passwordCharset)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		out[i] = passwordCharset[n.Int64()]
	}
	return string(out), nil
}
