package tests

import (
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// SigningKey is a throwaway Ed25519 key pair for signing test interactions.
type SigningKey struct {
	PublicKeyHex string
	PrivateKey   ed25519.PrivateKey
}

// NewSigningKey generates a fresh key pair.
func NewSigningKey(t *testing.T) SigningKey {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return SigningKey{
		PublicKeyHex: hex.EncodeToString(pub),
		PrivateKey:   priv,
	}
}

// Sign returns the hex signature over timestamp followed by body.
func (k SigningKey) Sign(timestamp string, body []byte) string {
	msg := append([]byte(timestamp), body...)
	return hex.EncodeToString(ed25519.Sign(k.PrivateKey, msg))
}
