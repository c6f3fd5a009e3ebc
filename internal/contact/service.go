package contact

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Service struct {
	validator *Validator
	relay     Relay
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(relay Relay, logger *zap.Logger) *Service {
	return &Service{
		validator: NewValidator(),
		relay:     relay,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit validates the form and hands it to the relay. Validation errors
// are *errors.ErrValidation; relay failures are wrapped as-is.
func (s *Service) Submit(ctx context.Context, f Form) (*Message, error) {
	clean, err := s.validator.Validate(f)
	if err != nil {
		return nil, err
	}

	msg := &Message{Form: clean, ReceivedAt: s.now().UTC()}
	if err := s.relay.Send(ctx, *msg); err != nil {
		s.logger.Error("Failed to relay contact message", zap.Error(err))
		return nil, err
	}
	return msg, nil
}
