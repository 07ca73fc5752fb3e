package discord

import (
	"context"
	"fmt"
	"net/http"
	"time"

	pkghttp "procurement-srv/pkg/http"
)

// SendMessage sends a plain text message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

// SendEmbed sends an embed message built from options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	username := options.Username
	if username == "" {
		username = d.config.DefaultUsername
	}
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	return d.send(ctx, WebhookPayload{
		Username: username,
		Embeds: []Embed{{
			Title:       options.Title,
			Description: options.Description,
			Color:       options.Color,
			Timestamp:   ts.UTC().Format(time.RFC3339),
			Fields:      options.Fields,
		}},
	})
}

// SendError sends an error alert embed.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	fields := []EmbedField{}
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Title:       title,
		Description: description,
		Color:       ColorError,
		Fields:      fields,
	})
}

// SendWarning sends a warning alert embed.
func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Title:       title,
		Description: description,
		Color:       ColorWarning,
	})
}

// GetWebhookURL returns the full webhook URL.
func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf(webhookURLFormat, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	client := pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   d.config.Timeout,
		Retries:   d.config.Retries,
		RetryWait: d.config.RetryWait,
	})

	body, statusCode, err := client.Post(ctx, d.GetWebhookURL(), payload, nil)
	if err != nil {
		return fmt.Errorf("failed to call Discord webhook: %w", err)
	}
	// Discord returns 204 No Content on success.
	if statusCode != http.StatusNoContent && statusCode != http.StatusOK {
		return fmt.Errorf("Discord webhook returned status: %d, body: %s", statusCode, string(body))
	}
	return nil
}
