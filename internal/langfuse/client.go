// Package langfuse talks to the Langfuse public API: trace and score
// ingestion for generated reports, and prompt management for their system
// prompt. Without credentials every call is a no-op.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultBatchSize     = 20
	defaultQueueSize     = 256
	defaultFlushInterval = 2 * time.Second
	sendTimeout          = 5 * time.Second
)

// Client records report traces and the feedback scores attached to them.
type Client interface {
	IsEnabled() bool
	// CreateTrace returns the trace ID, generated locally when in.ID is empty.
	// In async mode the ID is valid even if delivery later fails.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	CreateScore(ctx context.Context, in ScoreInput) error
	// Close flushes queued events and stops the background sender.
	Close(ctx context.Context) error
}

type TraceInput struct {
	ID       string
	UserID   string
	Name     string
	Input    any
	Output   any
	Tags     []string
	Metadata map[string]any
}

type ScoreInput struct {
	TraceID string
	Name    string
	Value   float64
	Comment string
}

type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
	Release     string

	// Synchronous sends each event on the calling goroutine and returns
	// delivery errors. Otherwise events are queued and sent in batches.
	Synchronous   bool
	BatchSize     int
	QueueSize     int
	FlushInterval time.Duration

	HTTPClient *http.Client
	Logger     *slog.Logger
}

type client struct {
	cfg     Config
	enabled bool
	http    *http.Client
	log     *slog.Logger
	now     func() time.Time

	mu     sync.RWMutex
	closed bool
	queue  chan ingestionEvent
	done   chan struct{}
}

// NewClient creates a client. It is disabled unless base URL and both keys
// are set.
func NewClient(cfg Config) Client {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "langfuse")

	c := &client{
		cfg:     cfg,
		enabled: cfg.BaseURL != "" && cfg.PublicKey != "" && cfg.SecretKey != "",
		http:    cfg.HTTPClient,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 10 * time.Second}
	}

	if !c.enabled {
		log.Info("disabled", "reason", missingSetting(cfg))
		return c
	}
	log.Info("enabled", "base_url", cfg.BaseURL, "env", cfg.Environment, "sync", cfg.Synchronous)

	if !cfg.Synchronous {
		if c.cfg.BatchSize <= 0 {
			c.cfg.BatchSize = defaultBatchSize
		}
		if c.cfg.QueueSize <= 0 {
			c.cfg.QueueSize = defaultQueueSize
		}
		if c.cfg.FlushInterval <= 0 {
			c.cfg.FlushInterval = defaultFlushInterval
		}
		c.queue = make(chan ingestionEvent, c.cfg.QueueSize)
		c.done = make(chan struct{})
		go c.run()
	}
	return c
}

func missingSetting(cfg Config) string {
	switch {
	case cfg.BaseURL == "":
		return "LANGFUSE_BASE_URL is empty"
	case cfg.PublicKey == "":
		return "LANGFUSE_PUBLIC_KEY is empty"
	default:
		return "LANGFUSE_SECRET_KEY is empty"
	}
}

func (c *client) IsEnabled() bool {
	return c.enabled
}

func (c *client) CreateTrace(ctx context.Context, in TraceInput) (string, error) {
	if !c.enabled {
		return "", nil
	}

	traceID := in.ID
	if traceID == "" {
		traceID = uuid.NewString()
	}

	metadata := make(map[string]any, len(in.Metadata)+1)
	for k, v := range in.Metadata {
		metadata[k] = v
	}
	if c.cfg.Environment != "" {
		metadata["environment"] = c.cfg.Environment
	}

	return traceID, c.submit(ctx, c.event("trace-create", traceBody{
		ID:          traceID,
		Timestamp:   c.now().Format(time.RFC3339Nano),
		Name:        in.Name,
		UserID:      in.UserID,
		Input:       in.Input,
		Output:      in.Output,
		Tags:        in.Tags,
		Metadata:    metadata,
		Release:     c.cfg.Release,
		Environment: c.cfg.Environment,
	}))
}

func (c *client) CreateScore(ctx context.Context, in ScoreInput) error {
	if !c.enabled {
		return nil
	}
	if in.TraceID == "" {
		return errors.New("langfuse score: trace id is required")
	}

	return c.submit(ctx, c.event("score-create", scoreBody{
		ID:          uuid.NewString(),
		TraceID:     in.TraceID,
		Name:        in.Name,
		Value:       in.Value,
		DataType:    "NUMERIC",
		Comment:     in.Comment,
		Environment: c.cfg.Environment,
	}))
}

func (c *client) event(kind string, body any) ingestionEvent {
	return ingestionEvent{
		ID:        uuid.NewString(),
		Type:      kind,
		Timestamp: c.now().Format(time.RFC3339Nano),
		Body:      body,
	}
}

// submit sends inline in synchronous mode. Otherwise it enqueues without
// blocking and drops the event when the queue is full or closed.
func (c *client) submit(ctx context.Context, ev ingestionEvent) error {
	if c.cfg.Synchronous {
		if err := c.send(ctx, []ingestionEvent{ev}); err != nil {
			return fmt.Errorf("langfuse %s: %w", ev.Type, err)
		}
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		c.log.Warn("event dropped after close", "event", ev.Type)
		return nil
	}
	select {
	case c.queue <- ev:
	default:
		c.log.Warn("queue full, event dropped", "event", ev.Type)
	}
	return nil
}

// run batches queued events until the queue is closed, then flushes the rest.
func (c *client) run() {
	defer close(c.done)

	ticker := time.NewTicker(c.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]ingestionEvent, 0, c.cfg.BatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := c.send(ctx, batch); err != nil {
			c.log.Warn("batch send failed", "events", len(batch), "error", err)
		}
		cancel()
		batch = batch[:0]
	}

	for {
		select {
		case ev, ok := <-c.queue:
			if !ok {
				flush()
				return
			}
			batch = append(batch, ev)
			if len(batch) >= c.cfg.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (c *client) Close(ctx context.Context) error {
	if !c.enabled || c.cfg.Synchronous {
		return nil
	}

	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.queue)
	}
	c.mu.Unlock()

	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("langfuse flush: %w", ctx.Err())
	}
}

func (c *client) send(ctx context.Context, events []ingestionEvent) error {
	body, err := json.Marshal(batchPayload{Batch: events})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/api/public/ingestion"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.PublicKey, c.cfg.SecretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ingestion failed with status %d", resp.StatusCode)
	}

	// 207 carries per-event results
	var result ingestionResult
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if len(raw) == 0 || json.Unmarshal(raw, &result) != nil || len(result.Errors) == 0 {
		return nil
	}
	first := result.Errors[0]
	return fmt.Errorf("%d of %d events rejected, first: %d %s",
		len(result.Errors), len(events), first.Status, first.Message)
}

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type ingestionResult struct {
	Errors []struct {
		ID      string `json:"id"`
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"errors"`
}

type traceBody struct {
	ID          string         `json:"id"`
	Timestamp   string         `json:"timestamp"`
	Name        string         `json:"name,omitempty"`
	UserID      string         `json:"userId,omitempty"`
	Input       any            `json:"input,omitempty"`
	Output      any            `json:"output,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Release     string         `json:"release,omitempty"`
	Environment string         `json:"environment,omitempty"`
}

type scoreBody struct {
	ID          string  `json:"id"`
	TraceID     string  `json:"traceId"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	DataType    string  `json:"dataType"`
	Comment     string  `json:"comment,omitempty"`
	Environment string  `json:"environment,omitempty"`
}
