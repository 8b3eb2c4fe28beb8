package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	documentmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/document"
	"github.com/adisakb/e-sarabun/internal/core/events"
)

// Job is one pending spreadsheet push.
type Job struct {
	Document documentmodel.Document
}

// PushResult is the outcome of the most recent delivery attempt. The UI
// shows it as a transient message; the registry itself never depends on it.
type PushResult struct {
	DocumentID string    `json:"document_id"`
	RegisterNo string    `json:"register_no"`
	PushedAt   time.Time `json:"pushed_at"`
	OK         bool      `json:"ok"`
	Error      string    `json:"error,omitempty"`
}

type Config struct {
	WebhookURL   string
	PushTimeout  time.Duration
	MaxWorkers   int
	JobQueueSize int
}

// Client pushes newly registered documents to an external spreadsheet
// webhook. Deliveries are fire-and-forget: enqueueing never blocks the
// caller, failures are logged and recorded but never retried, and a full
// queue drops the job.
type Client struct {
	webhookURL  string
	pushTimeout time.Duration
	httpClient  *http.Client
	logger      *slog.Logger

	jobQueue   chan Job
	maxWorkers int
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	once       sync.Once

	mu         sync.RWMutex
	lastResult *PushResult
}

func NewClient(config Config, logger *slog.Logger) *Client {
	ctx, cancel := context.WithCancel(context.Background())

	maxWorkers := config.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 2
	}

	jobQueueSize := config.JobQueueSize
	if jobQueueSize <= 0 {
		jobQueueSize = 64
	}

	pushTimeout := config.PushTimeout
	if pushTimeout <= 0 {
		pushTimeout = 10 * time.Second
	}

	client := &Client{
		webhookURL:  config.WebhookURL,
		pushTimeout: pushTimeout,
		httpClient:  &http.Client{Timeout: pushTimeout},
		logger:      logger,

		maxWorkers: maxWorkers,
		jobQueue:   make(chan Job, jobQueueSize),
		ctx:        ctx,
		cancel:     cancel,
	}

	client.startWorkers()

	return client
}

func (c *Client) startWorkers() {
	c.once.Do(func() {
		for i := 0; i < c.maxWorkers; i++ {
			c.wg.Add(1)
			go func(workerID int) {
				defer c.wg.Done()
				for {
					select {
					case job := <-c.jobQueue:
						c.logger.Debug("worker pushing document",
							"worker_id", workerID,
							"document_id", job.Document.ID)
						c.push(job)
					case <-c.ctx.Done():
						return
					}
				}
			}(i)
		}

		c.logger.Info("sheets worker pool started",
			"max_workers", c.maxWorkers,
			"queue_size", cap(c.jobQueue))
	})
}

// Enabled reports whether a webhook URL is configured.
func (c *Client) Enabled() bool {
	return c.webhookURL != ""
}

// Enqueue hands the document to the worker pool without blocking. A full
// queue drops the push; the registry entry already exists either way.
func (c *Client) Enqueue(doc documentmodel.Document) {
	if !c.Enabled() {
		c.logger.Debug("sheets webhook disabled, skipping push", "document_id", doc.ID)
		return
	}

	select {
	case c.jobQueue <- Job{Document: doc}:
	default:
		c.logger.Warn("sheets job queue full, dropping push", "document_id", doc.ID)
	}
}

// HandleDocumentCreated subscribes the sink to the created event. It only
// enqueues, so the creating request is never held up by delivery.
func (c *Client) HandleDocumentCreated(ctx context.Context, event events.Event) error {
	created, ok := event.(*events.DocumentCreatedEvent)
	if !ok {
		return fmt.Errorf("expected DocumentCreatedEvent, got %T", event)
	}

	c.Enqueue(created.Document)
	return nil
}

func (c *Client) RegisterEventHandlers(bus *events.EventBus) {
	bus.Subscribe(events.EventTypeDocumentCreated, c.HandleDocumentCreated)
}

func (c *Client) push(job Job) {
	doc := job.Document

	payload, err := json.Marshal(doc)
	if err != nil {
		c.record(doc, fmt.Errorf("marshal document: %w", err))
		return
	}

	ctx, cancel := context.WithTimeout(c.ctx, c.pushTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		c.record(doc, fmt.Errorf("build request: %w", err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(doc, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		c.record(doc, fmt.Errorf("webhook returned status %d", resp.StatusCode))
		return
	}

	c.record(doc, nil)
}

func (c *Client) record(doc documentmodel.Document, err error) {
	result := &PushResult{
		DocumentID: doc.ID,
		RegisterNo: doc.RegisterNo,
		PushedAt:   time.Now(),
		OK:         err == nil,
	}

	if err != nil {
		result.Error = err.Error()
		c.logger.Error("sheets push failed",
			"document_id", doc.ID,
			"register_no", doc.RegisterNo,
			"error", err)
	} else {
		c.logger.Info("sheets push delivered",
			"document_id", doc.ID,
			"register_no", doc.RegisterNo)
	}

	c.mu.Lock()
	c.lastResult = result
	c.mu.Unlock()
}

// LastResult returns the most recent delivery outcome, or nil when nothing
// has been pushed yet.
func (c *Client) LastResult() *PushResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.lastResult == nil {
		return nil
	}
	result := *c.lastResult
	return &result
}

func (c *Client) Shutdown() {
	c.logger.Info("shutting down sheets client")
	c.cancel()
	c.wg.Wait()
}
