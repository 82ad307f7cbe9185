// Package session keeps the per-user interactive state between requests.
package session

import (
	"sync"

	"AgriMind_FarmAssistant/internal/models"
)

// Session is one user's state across menu navigations. It is never persisted.
type Session struct {
	ID string

	mu       sync.Mutex
	verified bool
	loggedIn bool
	username string
	role     models.Role
	chat     []models.ChatExchange
	soil     []models.SoilReading
	rentals  []models.RentalListing
}

// Snapshot is a copy of the session flags, safe to hand to JSON encoders.
type Snapshot struct {
	Verified bool        `json:"verified"`
	LoggedIn bool        `json:"logged_in"`
	Username string      `json:"username,omitempty"`
	Role     models.Role `json:"role,omitempty"`
}

func New(id string) *Session {
	return &Session{ID: id}
}

func (s *Session) MarkVerified() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verified = true
}

func (s *Session) Verified() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verified
}

// Login copies username and role from the matched account.
func (s *Session) Login(acc models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = true
	s.username = acc.Username
	s.role = acc.Role
}

func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Verified: s.verified,
		LoggedIn: s.loggedIn,
		Username: s.username,
		Role:     s.role,
	}
}

func (s *Session) AppendChat(prompt, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, models.ChatExchange{Prompt: prompt, Reply: reply})
}

// AppendSoil rejects out of range readings. Identical readings are appended again.
func (s *Session) AppendSoil(r models.SoilReading) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.soil = append(s.soil, r)
	return nil
}

func (s *Session) AppendRental(l models.RentalListing) error {
	if err := l.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rentals = append(s.rentals, l)
	return nil
}

func (s *Session) ChatLog() []models.ChatExchange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatExchange{}, s.chat...)
}

func (s *Session) SoilLog() []models.SoilReading {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SoilReading{}, s.soil...)
}

func (s *Session) RentalLog() []models.RentalListing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.RentalListing{}, s.rentals...)
}

// Reset clears every field, the Kisan verification included.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verified = false
	s.loggedIn = false
	s.username = ""
	s.role = ""
	s.chat = nil
	s.soil = nil
	s.rentals = nil
}
