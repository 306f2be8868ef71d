package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{Content: content})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	if err != nil {
		description = fmt.Sprintf("%s\n```%v```", description, err)
	}
	return d.send(ctx, WebhookPayload{Embeds: []Embed{d.embed(title, description, colorError)}})
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.send(ctx, WebhookPayload{Embeds: []Embed{d.embed("Bug report", message, colorBug)}})
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) embed(title, description string, color int) Embed {
	if len(description) > maxDescriptionLen {
		description = description[:maxDescriptionLen-3] + "..."
	}
	return Embed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	if payload.Username == "" {
		payload.Username = d.config.DefaultUsername
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s", d.baseURL, d.webhook.ID, d.webhook.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.l.Warnf(ctx, "pkg.discord.send: %v", err)
		return fmt.Errorf("discord: post webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("discord: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
