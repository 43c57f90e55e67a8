package notifier

import (
	"context"
	"fmt"
	"net/http"

	"github.com/slack-go/slack"
)

// Slack mirrors messages to a Slack incoming webhook.
type Slack struct {
	webhookURL string
	httpClient *http.Client
}

func NewSlack(webhookURL string, httpClient *http.Client) *Slack {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Slack{webhookURL: webhookURL, httpClient: httpClient}
}

func (s *Slack) Notify(ctx context.Context, text string) error {
	msg := &slack.WebhookMessage{Text: text}
	if err := slack.PostWebhookCustomHTTPContext(ctx, s.webhookURL, s.httpClient, msg); err != nil {
		return fmt.Errorf("failed to post Slack webhook: %w", err)
	}
	return nil
}
