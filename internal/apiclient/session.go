package apiclient

import (
	"context"
	"errors"
	"sync"

	"github.com/itlaf/fotostudio/internal/models"
)

// State is the auth lifecycle of a Session.
type State int

const (
	StateUnauthenticated State = iota
	StateLoading
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "LOADING"
	case StateAuthenticated:
		return "AUTHENTICATED"
	default:
		return "UNAUTHENTICATED"
	}
}

// Session tracks the current user on top of a Client. It starts in
// StateUnauthenticated, passes through StateLoading while a stored token is
// being verified, and settles in StateAuthenticated with the user loaded.
// Any 401 from the server drops it back to StateUnauthenticated.
type Session struct {
	mu    sync.Mutex
	api   *Client
	state State
	user  *models.User
}

func NewSession(api *Client) *Session {
	return &Session{api: api, state: StateUnauthenticated}
}

// Start restores the session from a previously stored token, if any.
// With no stored token it settles immediately in StateUnauthenticated
// without a network call.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	token, err := s.api.tokens.Load()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if token == "" {
		s.state = StateUnauthenticated
		s.mu.Unlock()
		return nil
	}
	s.state = StateLoading
	s.mu.Unlock()

	user, err := s.api.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateUnauthenticated
		s.user = nil
		if errors.Is(err, ErrUnauthenticated) {
			return nil
		}
		return err
	}
	s.state = StateAuthenticated
	s.user = user
	return nil
}

// Login authenticates and loads the user.
func (s *Session) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.state = StateLoading
	s.user = nil
	s.mu.Unlock()

	err := s.api.Login(ctx, email, password)
	if err == nil {
		var user *models.User
		user, err = s.api.Me(ctx)
		if err == nil {
			s.mu.Lock()
			s.state = StateAuthenticated
			s.user = user
			s.mu.Unlock()
			return nil
		}
	}

	s.mu.Lock()
	s.state = StateUnauthenticated
	s.user = nil
	s.mu.Unlock()
	return err
}

// Logout clears the token and resets the session.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateUnauthenticated
	s.user = nil
	return s.api.Logout()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentUser returns the loaded user, or nil outside StateAuthenticated.
func (s *Session) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated {
		return nil
	}
	return s.user
}
