package interaction

import "github.com/bwmarrin/discordgo"

const (
	// SignatureHeader carries the hex encoded Ed25519 signature.
	SignatureHeader = "X-Signature-Ed25519"
	// TimestampHeader carries the timestamp that prefixes the signed body.
	TimestampHeader = "X-Signature-Timestamp"

	// GreetCommand is the only application command this service answers.
	GreetCommand = "greet"
)

// Plain text bodies returned for every non 200 outcome.
const (
	MsgMissingPublicKey = "Missing public key."
	MsgMissingHeaders   = "Missing signature header(s)."
	MsgInvalidSignature = "Invalid signature."
	MsgInvalidFormat    = "Invalid data format."
	MsgNotRecognized    = "Interaction not recognized."
)

// InteractionResponse is the reply sent back to the chat platform.
type InteractionResponse struct {
	// Type is the platform reply kind (1 pong, 4 channel message).
	Type discordgo.InteractionResponseType `json:"type"`
	// Data is only set for replies that carry a message.
	Data *InteractionResponseData `json:"data,omitempty"`
}

// InteractionResponseData is the message attached to a channel message reply.
type InteractionResponseData struct {
	// Content is the text posted to the channel.
	Content string `json:"content"`
}
