// Package signature verifies Ed25519 signed interaction requests.
package signature

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Options tunes the checks a Verifier runs after the signature itself is valid.
type Options struct {
	// MaxTimestampSkew rejects timestamps further than this from now. Zero disables the check.
	MaxTimestampSkew time.Duration
	// Replay rejects signatures that were already accepted. Nil disables the check.
	Replay *ReplayGuard
}

// Verifier checks detached signatures over timestamp || body.
type Verifier struct {
	publicKey ed25519.PublicKey
	keyErr    error
	opts      Options
	now       func() time.Time
}

// NewVerifier decodes publicKeyHex once. A bad key does not fail construction;
// it is reported by every call to Verify so the service can still start.
func NewVerifier(publicKeyHex string, opts Options) *Verifier {
	v := &Verifier{opts: opts, now: time.Now}
	if publicKeyHex == "" {
		v.keyErr = ErrMissingPublicKey
		return v
	}
	key, err := DecodeHex(publicKeyHex)
	if err != nil {
		v.keyErr = fmt.Errorf("%w: %w", ErrMalformedKey, err)
		return v
	}
	if len(key) != ed25519.PublicKeySize {
		v.keyErr = fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedKey, len(key), ed25519.PublicKeySize)
		return v
	}
	v.publicKey = ed25519.PublicKey(key)
	return v
}

// HasPublicKey reports whether a public key was configured at all.
func (v *Verifier) HasPublicKey() bool {
	return !errors.Is(v.keyErr, ErrMissingPublicKey)
}

// KeyError returns the problem found with the configured key, if any.
func (v *Verifier) KeyError() error {
	return v.keyErr
}

// Verify checks signatureHex against the concatenation of timestamp and body.
func (v *Verifier) Verify(signatureHex, timestamp string, body []byte) error {
	if v.keyErr != nil {
		return v.keyErr
	}
	sig, err := DecodeHex(signatureHex)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedSignature, err)
	}
	// ed25519.Verify only panics on a bad key length, but a short signature is a plain mismatch.
	if len(sig) != ed25519.SignatureSize {
		return ErrInvalidSignature
	}
	if !ed25519.Verify(v.publicKey, Message(timestamp, body), sig) {
		return ErrInvalidSignature
	}
	if err := v.checkTimestamp(timestamp); err != nil {
		return err
	}
	if v.opts.Replay != nil {
		return v.opts.Replay.Observe(signatureHex)
	}
	return nil
}

func (v *Verifier) checkTimestamp(timestamp string) error {
	if v.opts.MaxTimestampSkew <= 0 {
		return nil
	}
	secs, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStaleTimestamp, err)
	}
	skew := v.now().Sub(time.Unix(secs, 0))
	if skew > v.opts.MaxTimestampSkew || skew < -v.opts.MaxTimestampSkew {
		return fmt.Errorf("%w: skew %s", ErrStaleTimestamp, skew)
	}
	return nil
}

// Message builds the signed bytes: the timestamp followed by the raw body, no separator.
func Message(timestamp string, body []byte) []byte {
	msg := make([]byte, 0, len(timestamp)+len(body))
	msg = append(msg, timestamp...)
	return append(msg, body...)
}

// DecodeHex turns pairs of hex digits into bytes. Odd length or non hex input is an error.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex: %w", err)
	}
	return b, nil
}
