package discord

import "time"

const (
	// webhookURLFormat is the Discord webhook endpoint.
	webhookURLFormat = "https://discord.com/api/webhooks/%s/%s"

	// ColorError is the embed color for error alerts.
	ColorError = 0xEF4444
	// ColorWarning is the embed color for warning alerts.
	ColorWarning = 0xF59E0B
)

// DefaultConfig returns the default Discord service configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		Retries:         2,
		RetryWait:       500 * time.Millisecond,
		DefaultUsername: "procurement-srv",
	}
}
