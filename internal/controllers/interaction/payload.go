package interaction

import (
	"math"

	"github.com/bwmarrin/discordgo"
	"github.com/tidwall/gjson"
)

// Payload gives typed, optional access to the fields dispatch cares about.
// A missing or mistyped field is reported as absent, never as an error.
type Payload struct {
	root gjson.Result
}

// ParsePayload validates body as JSON. ok is false when it is not.
func ParsePayload(body []byte) (Payload, bool) {
	if !gjson.ValidBytes(body) {
		return Payload{}, false
	}
	return Payload{root: gjson.ParseBytes(body)}, true
}

// Type returns the interaction type when it is an integer in range.
func (p Payload) Type() (discordgo.InteractionType, bool) {
	res := p.root.Get("type")
	if res.Type != gjson.Number {
		return 0, false
	}
	if res.Num != math.Trunc(res.Num) || res.Num < 0 || res.Num > math.MaxUint8 {
		return 0, false
	}
	return discordgo.InteractionType(res.Num), true
}

// CommandName returns data.name when it is a string.
func (p Payload) CommandName() (string, bool) {
	res := p.root.Get("data.name")
	if res.Type != gjson.String {
		return "", false
	}
	return res.Str, true
}

// FirstOptionValue returns data.options[0].value rendered as text.
// Strings are returned as is, numbers and booleans as their JSON literal.
// Null, objects and arrays are treated as absent.
func (p Payload) FirstOptionValue() (string, bool) {
	res := p.root.Get("data.options.0.value")
	switch res.Type {
	case gjson.String:
		return res.Str, true
	case gjson.Number, gjson.True, gjson.False:
		return res.Raw, true
	default:
		return "", false
	}
}
