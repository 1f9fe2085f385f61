// README: Travel-assistant chat with a per-user monthly token quota.
package assistant

import (
	"context"
	"fmt"
	"strings"
)

const assistantSystemPrompt = "You are a knowledgeable travel assistant. " +
	"Answer questions about destinations, itineraries, local customs, transport and budgeting. " +
	"Keep answers practical and concise."

// Provider answers a single chat message.
type Provider interface {
	Name() string
	Chat(ctx context.Context, message string) (string, error)
}

// Service orchestrates assistant chat and token-usage logic.
type Service struct {
	store    *Store
	provider Provider
}

// NewService creates a Service backed by the given Store and chat provider.
// provider may be nil, in which case Chat always fails with a configuration error.
func NewService(store *Store, provider Provider) *Service {
	return &Service{store: store, provider: provider}
}

// Chat deducts one token from the user's monthly allowance and forwards the
// message to the configured provider. Returns ErrInsufficientTokens when the
// quota for the current month is exhausted.
func (s *Service) Chat(ctx context.Context, userID int64, message string) (ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return ChatReply{}, fmt.Errorf("%w: message is required", ErrBadRequest)
	}
	if s.provider == nil {
		return ChatReply{}, fmt.Errorf("assistant: no chat provider configured")
	}

	if err := s.useToken(ctx, userID); err != nil {
		return ChatReply{}, err
	}

	reply, err := s.provider.Chat(ctx, message)
	if err != nil {
		return ChatReply{}, fmt.Errorf("assistant: %w", err)
	}
	return ChatReply{Reply: reply, Provider: s.provider.Name()}, nil
}

// RemainingTokens reports the user's remaining allowance for the current month.
func (s *Service) RemainingTokens(ctx context.Context, userID int64) (int, error) {
	return s.store.RemainingTokens(ctx, userID)
}

// useToken deducts one token. If the user row does not exist yet it is
// initialised and the token is immediately consumed.
func (s *Service) useToken(ctx context.Context, userID int64) error {
	err := s.store.UseToken(ctx, userID)
	if err != ErrInsufficientTokens {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, userID); initErr != nil {
		return initErr
	}
	return s.store.UseToken(ctx, userID)
}
