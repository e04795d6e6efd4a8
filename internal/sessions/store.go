package sessions

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"care-companion/internal/assessment"
)

var ErrNotFound = errors.New("session not found")

type entry struct {
	mu         sync.Mutex
	session    *assessment.Session
	lastActive time.Time
}

// Store keeps in-flight assessment sessions in memory, keyed by a random id.
// Each session is only touched under its own lock; sessions never share state.
type Store struct {
	engine *assessment.Engine
	ttl    time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	entries map[string]*entry
}

func NewStore(engine *assessment.Engine, ttl time.Duration) *Store {
	return &Store{
		engine:  engine,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// Start creates a session for audience and returns its id.
func (s *Store) Start(audience assessment.Audience) (string, *assessment.Session) {
	id := uuid.New().String()
	sess := s.engine.StartSession(audience)

	s.mu.Lock()
	s.entries[id] = &entry{session: sess, lastActive: s.now()}
	s.mu.Unlock()
	return id, sess
}

// With runs fn with exclusive access to the session identified by id.
func (s *Store) With(id string, fn func(*assessment.Session) error) error {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if s.expired(e) {
		s.Delete(id)
		return ErrNotFound
	}
	e.lastActive = s.now()
	return fn(e.session)
}

// Delete discards a session. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[id]
	delete(s.entries, id)
	return ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep removes sessions idle for longer than the ttl and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.entries {
		// 正在使用中的会话跳过
		if !e.mu.TryLock() {
			continue
		}
		if s.expired(e) {
			delete(s.entries, id)
			removed++
		}
		e.mu.Unlock()
	}
	return removed
}

func (s *Store) expired(e *entry) bool {
	return s.ttl > 0 && s.now().Sub(e.lastActive) > s.ttl
}
