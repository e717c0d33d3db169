package loki

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Logger receives the pusher's own failures, so they never loop back
// through the hook that feeds the pusher.
type Logger interface {
	Error(msg string, args ...any)
}

type Config struct {
	// URL of the loki push endpoint, e.g. https://loki.example.net/loki/api/v1/push
	URL string `validate:"required"`

	// BatchMaxSize is the maximum number of log lines sent in one request.
	BatchMaxSize int `validate:"gte=1"`

	// BatchMaxWait is the maximum time to wait before sending a batch.
	BatchMaxWait time.Duration `validate:"gte=1"`

	// Labels are attached to every stream.
	Labels map[string]string

	// Username and Password enable basic auth when set.
	Username string
	Password string
}

func (cfg *Config) setDefaults() {
	if cfg.BatchMaxSize == 0 {
		cfg.BatchMaxSize = 1000
	}
	if cfg.BatchMaxWait == 0 {
		cfg.BatchMaxWait = 5 * time.Second
	}
	if cfg.Labels == nil {
		cfg.Labels = map[string]string{}
	}
}

type LogEntry struct {
	Level   string
	Message string
	Caller  string
}

type streamValue [2]string

type stream struct {
	Stream map[string]string `json:"stream"`
	Values []streamValue     `json:"values"`
}

type pushRequest struct {
	Streams []stream `json:"streams"`
}

type Pusher struct {
	config    Config
	ctx       context.Context
	cancel    context.CancelFunc
	client    *http.Client
	entries   chan LogEntry
	waitGroup sync.WaitGroup
	logger    Logger
}

func New(ctx context.Context, cfg Config, logger Logger) (*Pusher, error) {

	cfg.setDefaults()
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid loki config: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	p := &Pusher{
		config:  cfg,
		ctx:     ctx,
		cancel:  cancel,
		client:  &http.Client{Timeout: 10 * time.Second},
		entries: make(chan LogEntry, cfg.BatchMaxSize),
		logger:  logger,
	}

	p.waitGroup.Add(1)
	go p.run()
	return p, nil
}

func (p *Pusher) Push(entry LogEntry) error {
	select {
	case p.entries <- entry:
		return nil
	default:
		return fmt.Errorf("loki entry buffer is full")
	}
}

func (p *Pusher) Stop() {
	p.cancel()
	p.waitGroup.Wait()
}

func (p *Pusher) run() {
	defer p.waitGroup.Done()

	ticker := time.NewTicker(p.config.BatchMaxWait)
	defer ticker.Stop()

	var batch []LogEntry
	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := p.send(batch); err != nil {
			p.logger.Error("failed to push logs to loki", "error", err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case entry := <-p.entries:
			batch = append(batch, entry)
			if len(batch) >= p.config.BatchMaxSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-p.ctx.Done():
			flush()
			return
		}
	}
}

func (p *Pusher) send(batch []LogEntry) error {

	values := make([]streamValue, 0, len(batch))
	for _, entry := range batch {
		line, err := json.Marshal(map[string]string{
			"level":   entry.Level,
			"message": entry.Message,
			"caller":  entry.Caller,
		})
		if err != nil {
			continue
		}
		values = append(values, streamValue{
			strconv.FormatInt(time.Now().UnixNano(), 10),
			string(line),
		})
	}

	body, err := json.Marshal(pushRequest{Streams: []stream{{
		Stream: p.config.Labels,
		Values: values,
	}}})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, p.config.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.config.Username != "" {
		req.SetBasicAuth(p.config.Username, p.config.Password)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("loki returned status %v", resp.Status)
	}
	return nil
}
