package assistant

import "errors"

// ErrInsufficientTokens is returned when a user has no assistant tokens remaining for the current month.
var ErrInsufficientTokens = errors.New("insufficient tokens")

// ErrBadRequest is returned for empty or malformed chat input.
var ErrBadRequest = errors.New("bad request")

// DefaultTokens is the number of assistant messages granted per month.
const DefaultTokens = 100

// ChatReply is the assistant's answer to a single user message.
type ChatReply struct {
	Reply    string `json:"reply"`
	Provider string `json:"provider"`
}
