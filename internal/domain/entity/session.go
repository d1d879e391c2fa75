package entity

import "sync"

// Session holds at most one authenticated user. A nil *Session behaves as
// an inactive session.
type Session struct {
	mu   sync.RWMutex
	user *User
}

func NewSession() *Session {
	return &Session{}
}

// NewSessionFor returns a session already holding user.
func NewSessionFor(user User) *Session {
	s := &Session{}
	s.Install(user)
	return s
}

// Install replaces whatever user the session held.
func (s *Session) Install(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

// Clear logs the session out; no-op when nothing is installed.
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

func (s *Session) User() (User, bool) {
	if s == nil {
		return User{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *Session) Active() bool {
	_, ok := s.User()
	return ok
}

// Role returns the active user's role
func (s *Session) Role() (Role, bool) {
	u, ok := s.User()
	if !ok {
		return "", false
	}
	return u.Role, true
}

// EntityID returns the linked entity id of the active user, absent when there
// is no session or the user has no link.
func (s *Session) EntityID() (string, bool) {
	u, ok := s.User()
	if !ok || !u.HasEntityID() {
		return "", false
	}
	return u.EntityID, true
}

// Actor names the active user for event messages.
func (s *Session) Actor() string {
	u, ok := s.User()
	if !ok {
		return "anonymous"
	}
	return u.Username
}
