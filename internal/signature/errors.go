package signature

import "errors"

const (
	// ErrMissingPublicKey is returned when no public key was configured.
	ErrMissingPublicKey = constError("missing public key")
	// ErrMalformedKey is returned when the configured key is not 32 hex encoded bytes.
	ErrMalformedKey = constError("malformed public key")
	// ErrMalformedSignature is returned when the signature header is not valid hex.
	ErrMalformedSignature = constError("malformed signature")
	// ErrInvalidSignature is returned when the signature does not match the message.
	ErrInvalidSignature = constError("invalid signature")
	// ErrStaleTimestamp is returned when the signed timestamp is outside the allowed skew.
	ErrStaleTimestamp = constError("timestamp outside allowed window")
	// ErrReplay is returned when a signature was already accepted within the replay window.
	ErrReplay = constError("signature replayed")
)

// IsAuthenticationError reports whether err should be answered as a failed authentication.
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrMalformedKey) ||
		errors.Is(err, ErrMalformedSignature) ||
		errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrStaleTimestamp) ||
		errors.Is(err, ErrReplay)
}

type constError string

func (e constError) Error() string {
	return string(e)
}
