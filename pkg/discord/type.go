package discord

import (
	"errors"
	"net/http"
	"time"

	"report-srv/pkg/log"
)

const (
	webhookBaseURL = "https://discord.com/api/webhooks"

	colorError = 0xE74C3C
	colorBug   = 0xE67E22

	// Discord rejects descriptions longer than this.
	maxDescriptionLen = 4096
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// Config contains configuration for Discord service.
type Config struct {
	Timeout         time.Duration
	DefaultUsername string
}

// DefaultConfig returns the default Discord configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		DefaultUsername: "report-srv",
	}
}

// discordImpl implements IDiscord.
type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	config  Config
	client  *http.Client
	baseURL string
}

// Embed represents a Discord embed message.
type Embed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

// WebhookPayload represents the payload sent to Discord webhook.
type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}
