// Package sessions keeps active quiz sessions in memory so answer scoring
// never trusts a client-held copy of the correct options. The database holds
// the durable copy; this store is the hot path between quiz start and
// submission.
package sessions

import (
	"sync"
	"time"

	"github.com/cryptoquest/insight-api/models"
	"github.com/cryptoquest/insight-api/utils"
)

type Store struct {
	mutex    sync.RWMutex
	sessions map[string]*models.QuizSession
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*models.QuizSession),
	}
}

func (s *Store) Put(session *models.QuizSession) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.sessions[session.ID] = session
}

// Get returns the session if it exists and has not expired. Expired entries
// are dropped on access.
func (s *Store) Get(id string) (*models.QuizSession, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	session, exists := s.sessions[id]
	if !exists {
		return nil, false
	}

	if time.Now().After(session.ExpiresAt) {
		delete(s.sessions, id)
		return nil, false
	}

	return session, true
}

// Take removes and returns the session in a single step, so two concurrent
// submissions for the same quiz cannot both claim it. Expired entries are
// dropped without being returned.
func (s *Store) Take(id string) (*models.QuizSession, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	session, exists := s.sessions[id]
	if !exists {
		return nil, false
	}
	delete(s.sessions, id)

	if time.Now().After(session.ExpiresAt) {
		return nil, false
	}

	return session, true
}

func (s *Store) Delete(id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.sessions, id)
}

func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.sessions)
}

// CleanupExpired removes sessions past their expiry. The cleanup scheduler
// calls this on a cron cadence.
func (s *Store) CleanupExpired() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now()
	cleaned := 0
	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
			cleaned++
		}
	}
	if cleaned > 0 {
		utils.LogInfo("Cleaned up %d expired quiz sessions", cleaned)
	}
	return cleaned
}
