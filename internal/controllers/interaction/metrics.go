package interaction

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for interactionsHandled.
const (
	outcomePong             = "pong"
	outcomeGreet            = "greet"
	outcomeMissingKey       = "missing_public_key"
	outcomeMissingHeaders   = "missing_headers"
	outcomeInvalidSignature = "invalid_signature"
	outcomeInvalidFormat    = "invalid_format"
	outcomeNotRecognized    = "not_recognized"
	outcomeVerifyError      = "verification_error"
)

var interactionsHandled = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "interactions_api",
	Name:      "interactions_handled_total",
	Help:      "Interactions handled, partitioned by outcome.",
}, []string{"outcome"})
