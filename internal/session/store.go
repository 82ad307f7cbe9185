package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

var ErrNotFound = errors.New("session not found")

// Store maps session IDs to live sessions held in process memory.
type Store struct {
	items *cache.Cache
	ttl   time.Duration
}

// NewStore creates a store. ttl <= 0 keeps sessions until logout.
func NewStore(ttl time.Duration) *Store {
	expiration := cache.NoExpiration
	cleanup := time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		cleanup = ttl
	}
	return &Store{items: cache.New(expiration, cleanup), ttl: expiration}
}

func (st *Store) Create() *Session {
	s := New(uuid.New().String())
	st.items.Set(s.ID, s, cache.DefaultExpiration)
	return s
}

// Get returns the session and refreshes its idle timer.
func (st *Store) Get(id string) (*Session, error) {
	v, ok := st.items.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	s := v.(*Session)
	if st.ttl > 0 {
		st.items.Set(id, s, cache.DefaultExpiration)
	}
	return s, nil
}

// Delete resets and forgets the session.
func (st *Store) Delete(id string) {
	if v, ok := st.items.Get(id); ok {
		v.(*Session).Reset()
	}
	st.items.Delete(id)
}

func (st *Store) Len() int {
	return st.items.ItemCount()
}
