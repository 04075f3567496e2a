// internal/messaging/twilio.go
package messaging

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// twilioSender posts to the Twilio Messages API with WhatsApp addressing.
type twilioSender struct {
	client     *http.Client
	accountSID string
	authToken  string
	from       string
}

func (t *twilioSender) send(ctx context.Context, phone, text string) error {
	if t.accountSID == "" || t.authToken == "" || t.from == "" {
		return fmt.Errorf("twilio credentials not configured")
	}

	form := url.Values{}
	form.Set("From", "whatsapp:"+t.from)
	form.Set("To", "whatsapp:+"+phone)
	form.Set("Body", text)

	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", t.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building twilio request: %w", err)
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling twilio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("twilio returned %s", resp.Status)
	}
	return nil
}
