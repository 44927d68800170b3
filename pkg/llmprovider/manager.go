package llmprovider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"travel-planning-assistant/pkg/gemini"
	"travel-planning-assistant/pkg/log"
)

const (
	// DefaultRetryAttempts is how many times a single model is retried
	// before the chain advances to the next one.
	DefaultRetryAttempts = 2

	// DefaultRetryDelay is the base delay between retries of the same model.
	// The delay grows linearly with the attempt number.
	DefaultRetryDelay = 1 * time.Second

	// DefaultMaxTotalTimeout bounds a full walk of the chain, retries included.
	DefaultMaxTotalTimeout = 2 * time.Minute

	// probePrompt is the minimal prompt used to verify connectivity.
	probePrompt = "ping"

	// probeMaxTokens keeps the connectivity probe as cheap as possible.
	probeMaxTokens = 8
)

// Config controls retry and pacing behaviour of the Manager.
type Config struct {
	RetryAttempts     int
	RetryDelay        time.Duration
	MaxTotalTimeout   time.Duration
	RequestsPerMinute int
}

// DefaultConfig returns the retry policy used when no config is supplied.
func DefaultConfig() *Config {
	return &Config{
		RetryAttempts:   DefaultRetryAttempts,
		RetryDelay:      DefaultRetryDelay,
		MaxTotalTimeout: DefaultMaxTotalTimeout,
	}
}

// Manager walks an ordered model chain until one model answers. The chain
// position is sticky: once a model succeeds, later calls start from it
// instead of re-trying the models that already failed. Terminal errors
// (bad key, unknown model) abort the walk immediately; transient errors
// advance it.
type Manager struct {
	providers []Provider
	config    *Config
	limiter   *rate.Limiter
	logger    log.Logger

	mu     sync.Mutex
	active int
}

// NewManager builds a Manager over the given chain. Order matters: providers
// earlier in the slice are preferred.
func NewManager(providers []Provider, config *Config, logger log.Logger) (*Manager, error) {
	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if config == nil {
		config = DefaultConfig()
	}

	m := &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
	if config.RequestsPerMinute > 0 {
		m.limiter = rate.NewLimiter(rate.Limit(float64(config.RequestsPerMinute)/60.0), config.RequestsPerMinute)
	}
	return m, nil
}

// GenerateContent tries the chain starting at the sticky position. On success
// the position is pinned to the serving model. It returns ErrAllProvidersFailed
// once the whole chain has been exhausted.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	start := m.activeIndex()
	var lastErr error

	for i := 0; i < len(m.providers); i++ {
		idx := (start + i) % len(m.providers)
		provider := m.providers[idx]

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("fallback chain aborted after %d model(s): %w", i, ctx.Err())
		default:
		}

		if m.limiter != nil {
			if err := m.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limit wait: %w", err)
			}
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.setActiveIndex(idx)
			m.logger.Infof(ctx, "pkg.llmprovider.Manager.GenerateContent: model %s answered (%d/%d in chain)", provider.Model(), idx+1, len(m.providers))
			return resp, nil
		}

		lastErr = &ProviderError{Provider: provider.Name(), Model: provider.Model(), Err: err}
		m.logger.Warnf(ctx, "pkg.llmprovider.Manager.GenerateContent: model %s failed: %v", provider.Model(), err)

		if !gemini.IsTransient(err) {
			return nil, lastErr
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// Ask is the uniform text-in text-out contract used by agents and the
// orchestrator.
func (m *Manager) Ask(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrInvalidRequest
	}
	resp, err := m.GenerateContent(ctx, &Request{
		Messages: []Message{{Role: gemini.RoleUser, Text: prompt}},
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Probe performs a minimal generation to verify that at least one model in
// the chain is reachable with the configured credentials.
func (m *Manager) Probe(ctx context.Context) error {
	_, err := m.GenerateContent(ctx, &Request{
		Messages:  []Message{{Role: gemini.RoleUser, Text: probePrompt}},
		MaxTokens: probeMaxTokens,
	})
	if err != nil {
		return fmt.Errorf("connectivity probe: %w", err)
	}
	return nil
}

// ActiveModel returns the model currently pinned by the sticky chain position.
func (m *Manager) ActiveModel() string {
	return m.providers[m.activeIndex()].Model()
}

// Models lists the chain in preference order.
func (m *Manager) Models() []string {
	models := make([]string, 0, len(m.providers))
	for _, p := range m.providers {
		models = append(models, p.Model())
	}
	return models
}

func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// Retrying a terminal error only burns quota.
		if !gemini.IsTransient(err) {
			return nil, err
		}
		if attempt == attempts {
			break
		}

		delay := time.Duration(attempt) * m.config.RetryDelay
		m.logger.Debugf(ctx, "pkg.llmprovider.Manager.generateWithRetry: model %s attempt %d/%d failed, retrying in %v: %v", provider.Model(), attempt, attempts, delay, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, lastErr
}

func (m *Manager) activeIndex() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

func (m *Manager) setActiveIndex(idx int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = idx
}
