// Package discord delivers notifications as Discord webhook embeds.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gabapcia/taowatch/internal/blockproc"
	"github.com/gabapcia/taowatch/internal/blockscan"
	"github.com/gabapcia/taowatch/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrMissingWebhook is returned by New when no swap webhook is configured.
	ErrMissingWebhook = errors.New("swap webhook url is required")

	// ErrUnexpectedStatus is returned when Discord answers with a non 2xx status.
	ErrUnexpectedStatus = errors.New("unexpected webhook status")
)

const maxErrorBodySize = 512

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color"`
	Fields      []embedField `json:"fields"`
}

type payload struct {
	Embeds []embed `json:"embeds"`
}

func newPayload(n blockscan.Notification) payload {
	fields := make([]embedField, len(n.Fields))
	for i, f := range n.Fields {
		fields[i] = embedField{Name: f.Name, Value: f.Value, Inline: f.Inline}
	}

	return payload{Embeds: []embed{{
		Title:       n.Title,
		Description: n.Description,
		Color:       n.Color,
		Fields:      fields,
	}}}
}

type notifier struct {
	httpClient      *retryablehttp.Client
	swapWebhook     string
	dissolveWebhook string
}

var _ blockproc.Notifier = (*notifier)(nil)

// webhook picks the destination for a category. Dissolution reports go to the
// dissolve webhook when one is configured.
func (n *notifier) webhook(c blockscan.Category) string {
	if c.IsDissolve() && n.dissolveWebhook != "" {
		return n.dissolveWebhook
	}
	return n.swapWebhook
}

// Notify posts the notification as a single embed.
func (n *notifier) Notify(ctx context.Context, notification blockscan.Notification) error {
	body, err := json.Marshal(newPayload(notification))
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, n.webhook(notification.Category), body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
		return fmt.Errorf("%w: %s: %s", ErrUnexpectedStatus, res.Status, bytes.TrimSpace(snippet))
	}

	logger.Debug(ctx, "notification delivered",
		"notification.category", notification.Category,
		"notification.title", notification.Title,
	)
	return nil
}

// New returns a Notifier posting to swapWebhook, and to dissolveWebhook for
// dissolution reports when it is not empty.
func New(httpClient *retryablehttp.Client, swapWebhook, dissolveWebhook string) (*notifier, error) {
	if swapWebhook == "" {
		return nil, ErrMissingWebhook
	}

	return &notifier{
		httpClient:      httpClient,
		swapWebhook:     swapWebhook,
		dissolveWebhook: dissolveWebhook,
	}, nil
}
