package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"travel-planning-assistant/internal/agent"
	"travel-planning-assistant/internal/assistant"
	"travel-planning-assistant/internal/router"
	"travel-planning-assistant/pkg/llmprovider"
	pkgLog "travel-planning-assistant/pkg/log"
)

// Config bounds the orchestrator's session store and history.
type Config struct {
	HistoryLimit int           // max turns kept per session
	SessionTTL   time.Duration // idle session lifetime
	MaxSessions  int           // LRU capacity of the session store
}

func (c *Config) applyDefaults() {
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = DefaultHistoryLimit
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = DefaultSessionTTL
	}
	if c.MaxSessions <= 0 {
		c.MaxSessions = DefaultMaxSessions
	}
}

type implUseCase struct {
	l          pkgLog.Logger
	llm        *llmprovider.Manager
	registry   *agent.Registry
	classifier router.Classifier
	config     Config

	sessions *expirable.LRU[string, *session]

	stateMu sync.RWMutex
	state   assistant.Status
}

// New creates the assistant UseCase and probes the model chain. A probe
// failure returns the instance in FAILED state together with the error:
// the caller decides whether to refuse startup, and a kept instance
// answers ErrNotInitialized without making network calls.
func New(
	ctx context.Context,
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	registry *agent.Registry,
	classifier router.Classifier,
	config Config,
) (*implUseCase, error) {
	config.applyDefaults()

	uc := &implUseCase{
		l:          l,
		llm:        llm,
		registry:   registry,
		classifier: classifier,
		config:     config,
		sessions:   expirable.NewLRU[string, *session](config.MaxSessions, nil, config.SessionTTL),
		state:      assistant.StatusUninitialized,
	}

	if err := llm.Probe(ctx); err != nil {
		uc.setState(assistant.StatusFailed)
		l.Errorf(ctx, "%s: model chain unreachable: %v", LogPrefixNew, err)
		return uc, fmt.Errorf("assistant bootstrap: %w", err)
	}

	uc.setState(assistant.StatusReady)
	l.Infof(ctx, "%s: ready, active model %s", LogPrefixNew, llm.ActiveModel())
	return uc, nil
}

// Status reports the orchestrator lifecycle state.
func (uc *implUseCase) Status() assistant.Status {
	uc.stateMu.RLock()
	defer uc.stateMu.RUnlock()
	return uc.state
}

func (uc *implUseCase) setState(s assistant.Status) {
	uc.stateMu.Lock()
	defer uc.stateMu.Unlock()
	uc.state = s
}

// requireReady gates operations on an instance that never came up. READY
// and DEGRADED both pass: a degraded assistant keeps trying.
func (uc *implUseCase) requireReady() error {
	switch uc.Status() {
	case assistant.StatusUninitialized, assistant.StatusFailed:
		return assistant.ErrNotInitialized
	default:
		return nil
	}
}

// noteModelOutcome tracks READY/DEGRADED from the latest model call. Chain
// exhaustion degrades; the next success recovers.
func (uc *implUseCase) noteModelOutcome(err error) {
	switch {
	case err == nil:
		uc.setState(assistant.StatusReady)
	case isExhausted(err):
		uc.setState(assistant.StatusDegraded)
	}
}

var _ assistant.UseCase = (*implUseCase)(nil)
