package interaction

import (
	"errors"
	"fmt"

	"github.com/DIMO-Network/interactions-api/internal/signature"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/bwmarrin/discordgo"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Verifier checks the detached signature of a request.
type Verifier interface {
	HasPublicKey() bool
	Verify(signatureHex, timestamp string, body []byte) error
}

// InteractionController answers signed interaction webhooks.
type InteractionController struct {
	verifier Verifier
}

// NewInteractionController creates a new InteractionController.
func NewInteractionController(verifier Verifier) *InteractionController {
	return &InteractionController{verifier: verifier}
}

// HandleInteraction godoc
// @Summary      Handle an interaction webhook
// @Description  Verifies the Ed25519 signature over timestamp and raw body, then answers pings and the greet command.
// @Tags         Interactions
// @Accept       json
// @Produce      json
// @Param        X-Signature-Ed25519    header  string  true  "Hex encoded Ed25519 signature"
// @Param        X-Signature-Timestamp  header  string  true  "Timestamp prefixed to the body before signing"
// @Success      200  {object}  InteractionResponse  "Pong or channel message"
// @Failure      400  "Invalid data format or interaction not recognized"
// @Failure      401  "Missing or invalid signature"
// @Failure      500  "Missing public key"
// @Router       /api/interactions [post]
func (ic *InteractionController) HandleInteraction(c *fiber.Ctx) error {
	var outcome string
	defer func() {
		interactionsHandled.WithLabelValues(outcome).Inc()
	}()

	if !ic.verifier.HasPublicKey() {
		outcome = outcomeMissingKey
		return richerrors.Error{
			ExternalMsg: MsgMissingPublicKey,
			Err:         errors.New("application public key is not configured"),
			Code:        fiber.StatusInternalServerError,
		}
	}

	sig := c.Get(SignatureHeader)
	timestamp := c.Get(TimestampHeader)
	if sig == "" || timestamp == "" {
		outcome = outcomeMissingHeaders
		return richerrors.Error{
			ExternalMsg: MsgMissingHeaders,
			Code:        fiber.StatusUnauthorized,
		}
	}

	// The raw request bytes, never a decoded or re-encoded form.
	body := c.Request().Body()
	if err := ic.verifier.Verify(sig, timestamp, body); err != nil {
		return verifyError(err, &outcome)
	}

	payload, ok := ParsePayload(body)
	if !ok {
		outcome = outcomeInvalidFormat
		return richerrors.Error{
			ExternalMsg: MsgInvalidFormat,
			Code:        fiber.StatusBadRequest,
		}
	}

	resp, ok := dispatch(payload)
	if !ok {
		outcome = outcomeNotRecognized
		zerolog.Ctx(c.UserContext()).Debug().Msg("Interaction not recognized")
		return richerrors.Error{
			ExternalMsg: MsgNotRecognized,
			Code:        fiber.StatusBadRequest,
		}
	}
	if resp.Type == discordgo.InteractionResponsePong {
		outcome = outcomePong
	} else {
		outcome = outcomeGreet
	}
	return c.JSON(resp)
}

// verifyError maps a failed verification to its response. Only authentication
// failures are the caller's fault; anything else is a server side problem.
func verifyError(err error, outcome *string) error {
	switch {
	case signature.IsAuthenticationError(err):
		*outcome = outcomeInvalidSignature
		return richerrors.Error{
			ExternalMsg: MsgInvalidSignature,
			Err:         err,
			Code:        fiber.StatusUnauthorized,
		}
	case errors.Is(err, signature.ErrMissingPublicKey):
		*outcome = outcomeMissingKey
		return richerrors.Error{
			ExternalMsg: MsgMissingPublicKey,
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	default:
		*outcome = outcomeVerifyError
		return richerrors.Error{
			Err:  fmt.Errorf("failed to verify interaction signature: %w", err),
			Code: fiber.StatusInternalServerError,
		}
	}
}

// dispatch maps a verified payload to its reply. Anything it does not
// understand, including unknown command names, is reported as not ok.
func dispatch(payload Payload) (InteractionResponse, bool) {
	typ, ok := payload.Type()
	if !ok {
		return InteractionResponse{}, false
	}
	switch typ {
	case discordgo.InteractionPing:
		return InteractionResponse{Type: discordgo.InteractionResponsePong}, true
	case discordgo.InteractionApplicationCommand:
		if name, ok := payload.CommandName(); !ok || name != GreetCommand {
			return InteractionResponse{}, false
		}
		value, ok := payload.FirstOptionValue()
		if !ok {
			return InteractionResponse{}, false
		}
		return InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &InteractionResponseData{Content: "Hello, " + value + "!"},
		}, true
	default:
		return InteractionResponse{}, false
	}
}
