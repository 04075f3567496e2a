// internal/messaging/evolution.go
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// evolutionSender posts to an Evolution API instance (self-hosted WhatsApp
// gateway).
type evolutionSender struct {
	client   *http.Client
	baseURL  string
	apiKey   string
	instance string
}

func (e *evolutionSender) send(ctx context.Context, phone, text string) error {
	if e.baseURL == "" || e.apiKey == "" || e.instance == "" {
		return fmt.Errorf("evolution api not configured")
	}

	payload, err := json.Marshal(map[string]string{
		"number": phone,
		"text":   text,
	})
	if err != nil {
		return fmt.Errorf("encoding evolution payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/message/sendText/%s", e.baseURL, e.instance)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building evolution request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling evolution api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("evolution api returned %s", resp.Status)
	}
	return nil
}
