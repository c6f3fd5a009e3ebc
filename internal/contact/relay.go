package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Relay delivers a contact message to whoever answers them
type Relay interface {
	Send(ctx context.Context, msg Message) error
}

// LogRelay only records the message in the service log
type LogRelay struct {
	logger *zap.Logger
}

func NewLogRelay(logger *zap.Logger) *LogRelay {
	return &LogRelay{logger: logger}
}

func (r *LogRelay) Send(_ context.Context, msg Message) error {
	r.logger.Info("Contact message received",
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject),
		zap.Int("message_length", len(msg.Message)),
	)
	return nil
}

// WebhookRelay POSTs each message as JSON to a configured URL
type WebhookRelay struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewWebhookRelay creates a relay posting to url
func NewWebhookRelay(url string, logger *zap.Logger) *WebhookRelay {
	return &WebhookRelay{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (r *WebhookRelay) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Error("Contact webhook request failed", zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		r.logger.Error("Contact webhook returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)),
		)
		return fmt.Errorf("contact webhook returned status %d", resp.StatusCode)
	}

	return nil
}
