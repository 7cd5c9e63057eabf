package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"valencia-events/app/models"
)

// Failure kinds of the generation pipeline. Handlers branch on these with
// errors.Is to map each kind to its own status code and message instead of
// collapsing everything into one generic failure.
var (
	ErrNoAPIKey = errors.New("openai api key not configured")
	ErrUpstream = errors.New("openai request failed")
	ErrBadReply = errors.New("invalid json in openai response")
	ErrStore    = errors.New("storing generated documents failed")
)

// Personas sent as the system message, per request kind.
const (
	eventsPersona  = "You are an expert Valencia event researcher."
	summaryPersona = "You are Valencia's official cultural concierge."
)

// GeneratorStore is the slice of the store the pipeline needs.
type GeneratorStore interface {
	GetAdminConfig(ctx context.Context) (*models.AdminConfig, error)
	InsertEvent(ctx context.Context, event *models.Event) error
	InsertSummary(ctx context.Context, summary *models.Summary) error
}

// Generator turns a date range into new Event or Summary documents via a
// chat-completion call using the stored prompt templates.
//
// Concurrent generation requests are not serialized or deduplicated; two
// overlapping requests can insert duplicate documents.
type Generator struct {
	store GeneratorStore
	chat  ChatClient
}

// NewGenerator builds a Generator over the given store and chat client.
func NewGenerator(store GeneratorStore, chat ChatClient) *Generator {
	return &Generator{store: store, chat: chat}
}

// loadConfig fetches the admin config and fails fast with ErrNoAPIKey when
// the config is missing or carries no credential. No upstream call is made
// in that case.
func (g *Generator) loadConfig(ctx context.Context) (*models.AdminConfig, error) {
	cfg, err := g.store.GetAdminConfig(ctx)
	if err != nil {
		return nil, ErrNoAPIKey
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, ErrNoAPIKey
	}
	return cfg, nil
}

// fillTemplate substitutes the placeholder tokens literally. A template
// missing a placeholder silently ignores that date.
func fillTemplate(template string, req models.GenerateRequest) string {
	filled := strings.ReplaceAll(template, "{{start_date}}", req.StartDate)
	return strings.ReplaceAll(filled, "{{end_date}}", req.EndDate)
}

// GenerateEvents runs the pipeline for the events template: fill, call,
// parse the reply as a JSON array of events, stamp and insert each one.
// Inserts are independent, so a store failure partway leaves the earlier
// documents in place.
func (g *Generator) GenerateEvents(ctx context.Context, req models.GenerateRequest) ([]models.Event, error) {
	cfg, err := g.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	prompt := fillTemplate(cfg.EventsPrompt, req)
	reply, err := g.chat.Complete(ctx, cfg.OpenAIAPIKey, eventsPersona, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var events []models.Event
	if err := json.Unmarshal([]byte(reply), &events); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReply, err)
	}

	for i := range events {
		events[i].ID = uuid.NewString()
		events[i].CreatedAt = time.Now()
		if err := g.store.InsertEvent(ctx, &events[i]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStore, err)
		}
	}
	return events, nil
}

// GenerateSummary runs the pipeline for the summary template and inserts
// the single parsed document.
func (g *Generator) GenerateSummary(ctx context.Context, req models.GenerateRequest) (*models.Summary, error) {
	cfg, err := g.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	prompt := fillTemplate(cfg.SummaryPrompt, req)
	reply, err := g.chat.Complete(ctx, cfg.OpenAIAPIKey, summaryPersona, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var summary models.Summary
	if err := json.Unmarshal([]byte(reply), &summary); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReply, err)
	}

	summary.ID = uuid.NewString()
	summary.CreatedAt = time.Now()
	if err := g.store.InsertSummary(ctx, &summary); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return &summary, nil
}
