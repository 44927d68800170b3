package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"travel-planning-assistant/internal/assistant"
)

// session is the mutable conversation state stored in the LRU. Its turn
// buffer is bounded: appending past the history limit drops the oldest.
type session struct {
	id        string
	createdAt time.Time

	mu         sync.Mutex
	turns      []assistant.Turn
	lastActive time.Time
}

func newSession() *session {
	now := time.Now()
	return &session{
		id:         uuid.NewString(),
		createdAt:  now,
		lastActive: now,
	}
}

// append records turns, dropping the oldest beyond the limit.
func (s *session) append(limit int, turns ...assistant.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns, turns...)
	if len(s.turns) > limit {
		s.turns = s.turns[len(s.turns)-limit:]
	}
	s.lastActive = time.Now()
}

// recent returns up to n most-recent turns, oldest first.
func (s *session) recent(n int) []assistant.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := len(s.turns) - n
	if start < 0 {
		start = 0
	}
	out := make([]assistant.Turn, len(s.turns)-start)
	copy(out, s.turns[start:])
	return out
}

// snapshot renders the domain view of the session.
func (s *session) snapshot() assistant.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]assistant.Turn, len(s.turns))
	copy(history, s.turns)
	return assistant.Session{
		ID:         s.id,
		History:    history,
		CreatedAt:  s.createdAt,
		LastActive: s.lastActive,
	}
}

// StartSession mints a new conversation session with an empty history.
func (uc *implUseCase) StartSession(ctx context.Context) (assistant.Session, error) {
	if err := uc.requireReady(); err != nil {
		return assistant.Session{}, err
	}

	s := newSession()
	uc.sessions.Add(s.id, s)
	uc.l.Infof(ctx, "%s: session %s created", LogPrefixStartSession, s.id)
	return s.snapshot(), nil
}

// resolveSession returns the stored session, starting a fresh one when the
// ID is empty, unknown, or expired. The hosting layer owns session
// lifetime, so a lost ID degrades to a new session rather than an error.
func (uc *implUseCase) resolveSession(ctx context.Context, id string) *session {
	if id != "" {
		if s, ok := uc.sessions.Get(id); ok {
			return s
		}
		uc.l.Warnf(ctx, "%s: session %s unknown or expired, starting fresh", LogPrefixChat, id)
	}

	s := newSession()
	uc.sessions.Add(s.id, s)
	return s
}
