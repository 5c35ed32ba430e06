package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carrental/bookingservice/internal/catalog"
)

// Store holds the live booking session for each user session id.
// The system models exactly one in-flight booking per session; the HTTP
// layer maps a session cookie to an entry here.
type Store struct {
	mu       sync.Mutex
	provider catalog.Provider
	now      func() time.Time
	sessions map[uuid.UUID]*Session
}

// NewStore constructs a session store whose sessions fetch add-ons through
// provider and judge dates against now.
func NewStore(provider catalog.Provider, now func() time.Time) *Store {
	return &Store{
		provider: provider,
		now:      now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Get returns the session for id, creating an empty one on first use.
func (st *Store) Get(id uuid.UUID) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[id]; ok {
		return s
	}
	s := NewSession(st.provider, st.now)
	st.sessions[id] = s
	return s
}
