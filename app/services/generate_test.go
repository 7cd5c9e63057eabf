package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"valencia-events/app/database"
	"valencia-events/app/models"
)

// fakeStore is an in-memory GeneratorStore recording what was inserted.
type fakeStore struct {
	config     *models.AdminConfig
	events     []models.Event
	summaries  []models.Summary
	failInsert int // fail the nth event insert (1-based), 0 = never
}

func (f *fakeStore) GetAdminConfig(ctx context.Context) (*models.AdminConfig, error) {
	if f.config == nil {
		return nil, database.ErrNotFound
	}
	return f.config, nil
}

func (f *fakeStore) InsertEvent(ctx context.Context, event *models.Event) error {
	if f.failInsert > 0 && len(f.events)+1 == f.failInsert {
		return errors.New("write failed")
	}
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeStore) InsertSummary(ctx context.Context, summary *models.Summary) error {
	f.summaries = append(f.summaries, *summary)
	return nil
}

// fakeChat records the call it received and replies with a canned string.
type fakeChat struct {
	reply   string
	err     error
	called  bool
	apiKey  string
	persona string
	prompt  string
}

func (f *fakeChat) Complete(ctx context.Context, apiKey, persona, prompt string) (string, error) {
	f.called = true
	f.apiKey = apiKey
	f.persona = persona
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func testConfig() *models.AdminConfig {
	return &models.AdminConfig{
		ID:            models.AdminConfigID,
		City:          "Valencia",
		OpenAIAPIKey:  "sk-test",
		EventsPrompt:  "List events between {{start_date}} and {{end_date}}.",
		SummaryPrompt: "Summarize {{start_date}} to {{end_date}}.",
	}
}

func testRequest() models.GenerateRequest {
	return models.GenerateRequest{StartDate: "2025-08-01", EndDate: "2025-08-07"}
}

func TestGenerateEventsNoConfig(t *testing.T) {
	store := &fakeStore{}
	chat := &fakeChat{reply: "[]"}
	gen := NewGenerator(store, chat)

	_, err := gen.GenerateEvents(context.Background(), testRequest())
	if !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("err = %v, want ErrNoAPIKey", err)
	}
	if chat.called {
		t.Error("chat client was called despite missing config")
	}
	if len(store.events) != 0 {
		t.Errorf("%d events written, want 0", len(store.events))
	}
}

func TestGenerateEventsEmptyKey(t *testing.T) {
	cfg := testConfig()
	cfg.OpenAIAPIKey = ""
	store := &fakeStore{config: cfg}
	chat := &fakeChat{reply: "[]"}
	gen := NewGenerator(store, chat)

	_, err := gen.GenerateEvents(context.Background(), testRequest())
	if !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("err = %v, want ErrNoAPIKey", err)
	}
	if chat.called {
		t.Error("chat client was called despite empty api key")
	}
}

func TestGenerateEventsFillsTemplate(t *testing.T) {
	store := &fakeStore{config: testConfig()}
	chat := &fakeChat{reply: "[]"}
	gen := NewGenerator(store, chat)

	if _, err := gen.GenerateEvents(context.Background(), testRequest()); err != nil {
		t.Fatalf("GenerateEvents: %v", err)
	}

	want := "List events between 2025-08-01 and 2025-08-07."
	if chat.prompt != want {
		t.Errorf("prompt = %q, want %q", chat.prompt, want)
	}
	if chat.apiKey != "sk-test" {
		t.Errorf("apiKey = %q, want %q", chat.apiKey, "sk-test")
	}
	if !strings.Contains(chat.persona, "event researcher") {
		t.Errorf("persona = %q, want the events persona", chat.persona)
	}
}

func TestFillTemplateMissingPlaceholder(t *testing.T) {
	got := fillTemplate("no placeholders here", testRequest())
	if got != "no placeholders here" {
		t.Errorf("fillTemplate = %q, want the template unchanged", got)
	}

	got = fillTemplate("only {{start_date}}", testRequest())
	if got != "only 2025-08-01" {
		t.Errorf("fillTemplate = %q, want %q", got, "only 2025-08-01")
	}
}

func TestGenerateEventsUpstreamFailure(t *testing.T) {
	store := &fakeStore{config: testConfig()}
	chat := &fakeChat{err: errors.New("connection refused")}
	gen := NewGenerator(store, chat)

	_, err := gen.GenerateEvents(context.Background(), testRequest())
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("err = %q, want cause included", err.Error())
	}
	if len(store.events) != 0 {
		t.Errorf("%d events written, want 0", len(store.events))
	}
}

func TestGenerateEventsBadReply(t *testing.T) {
	store := &fakeStore{config: testConfig()}
	chat := &fakeChat{reply: "Sorry, I cannot produce JSON today."}
	gen := NewGenerator(store, chat)

	_, err := gen.GenerateEvents(context.Background(), testRequest())
	if !errors.Is(err, ErrBadReply) {
		t.Fatalf("err = %v, want ErrBadReply", err)
	}
	if len(store.events) != 0 {
		t.Errorf("%d events written, want 0", len(store.events))
	}
}

func TestGenerateEventsSuccess(t *testing.T) {
	store := &fakeStore{config: testConfig()}
	chat := &fakeChat{reply: `[
		{"title": "Jazz Night", "date": "2025-08-02"},
		{"title": "Food Market", "date": "2025-08-03"}
	]`}
	gen := NewGenerator(store, chat)

	events, err := gen.GenerateEvents(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("GenerateEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if len(store.events) != 2 {
		t.Fatalf("%d events written, want 2", len(store.events))
	}
	if events[0].ID == "" || events[1].ID == "" {
		t.Error("generated events missing ids")
	}
	if events[0].ID == events[1].ID {
		t.Error("generated events share an id")
	}
	if events[0].CreatedAt.IsZero() {
		t.Error("generated event missing creation timestamp")
	}
	if store.events[0].Title != "Jazz Night" {
		t.Errorf("stored title = %q, want %q", store.events[0].Title, "Jazz Night")
	}
}

func TestGenerateEventsPartialInsert(t *testing.T) {
	store := &fakeStore{config: testConfig(), failInsert: 2}
	chat := &fakeChat{reply: `[{"title": "A"}, {"title": "B"}]`}
	gen := NewGenerator(store, chat)

	_, err := gen.GenerateEvents(context.Background(), testRequest())
	if !errors.Is(err, ErrStore) {
		t.Fatalf("err = %v, want ErrStore", err)
	}
	// No rollback: the first insert stays.
	if len(store.events) != 1 {
		t.Errorf("%d events written, want 1", len(store.events))
	}
}

func TestGenerateSummarySuccess(t *testing.T) {
	store := &fakeStore{config: testConfig()}
	chat := &fakeChat{reply: `{
		"summary": "A lively week in Valencia.",
		"start_date": "2025-08-01",
		"end_date": "2025-08-07",
		"event_types": ["music", "food"]
	}`}
	gen := NewGenerator(store, chat)

	summary, err := gen.GenerateSummary(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	if summary.ID == "" || summary.CreatedAt.IsZero() {
		t.Error("generated summary missing id or timestamp")
	}
	if summary.Summary != "A lively week in Valencia." {
		t.Errorf("summary text = %q", summary.Summary)
	}
	if len(store.summaries) != 1 {
		t.Fatalf("%d summaries written, want 1", len(store.summaries))
	}
	if chat.prompt != "Summarize 2025-08-01 to 2025-08-07." {
		t.Errorf("prompt = %q", chat.prompt)
	}
	if !strings.Contains(chat.persona, "cultural concierge") {
		t.Errorf("persona = %q, want the summary persona", chat.persona)
	}
}

func TestGenerateSummaryBadReply(t *testing.T) {
	store := &fakeStore{config: testConfig()}
	chat := &fakeChat{reply: "not json"}
	gen := NewGenerator(store, chat)

	_, err := gen.GenerateSummary(context.Background(), testRequest())
	if !errors.Is(err, ErrBadReply) {
		t.Fatalf("err = %v, want ErrBadReply", err)
	}
	if len(store.summaries) != 0 {
		t.Errorf("%d summaries written, want 0", len(store.summaries))
	}
}
