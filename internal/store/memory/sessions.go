package memory

import (
	"context"
	"sort"

	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store"
)

type SessionStore struct {
	base
	sessions map[string]models.Session
	photos   map[string]models.Photo

	// Clients, when set, is consulted to embed the client on reads.
	Clients *ClientStore
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: map[string]models.Session{},
		photos:   map[string]models.Photo{},
	}
}

func (s *SessionStore) Create(_ context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := clock()
	sess.CreatedAt = now
	sess.UpdatedAt = now
	s.sessions[sess.ID] = cloneSession(*sess)
	sess.Photos = []models.Photo{}
	return nil
}

func (s *SessionStore) attach(ctx context.Context, sess *models.Session) {
	sess.Photos = []models.Photo{}
	s.mu.RLock()
	for _, p := range s.photos {
		if p.SessionID == sess.ID {
			sess.Photos = append(sess.Photos, p)
		}
	}
	s.mu.RUnlock()
	sort.Slice(sess.Photos, func(i, j int) bool { return sess.Photos[i].ID < sess.Photos[j].ID })

	if s.Clients != nil {
		s.Clients.mu.RLock()
		if c, ok := s.Clients.clients[sess.ClientID]; ok {
			c = cloneClient(c)
			sess.Client = &c
		}
		s.Clients.mu.RUnlock()
	}
}

func (s *SessionStore) GetByID(ctx context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, store.ErrNotFound
	}
	sess = cloneSession(sess)
	s.attach(ctx, &sess)
	return &sess, nil
}

func (s *SessionStore) List(ctx context.Context) ([]models.Session, error) {
	s.mu.RLock()
	out := []models.Session{}
	for _, id := range sortedKeys(s.sessions) {
		out = append(out, cloneSession(s.sessions[id]))
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	for i := range out {
		s.attach(ctx, &out[i])
	}
	return out, nil
}

func (s *SessionStore) Update(_ context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.sessions[sess.ID]
	if !ok {
		return store.ErrNotFound
	}
	sess.CreatedAt = existing.CreatedAt
	sess.UpdatedAt = clock()
	s.sessions[sess.ID] = cloneSession(*sess)
	return nil
}

func (s *SessionStore) UpdateStatus(_ context.Context, id string, status models.SessionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return store.ErrNotFound
	}
	sess.Status = status
	sess.UpdatedAt = clock()
	s.sessions[id] = sess
	return nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.sessions, id)
	for pid, p := range s.photos {
		if p.SessionID == id {
			delete(s.photos, pid)
		}
	}
	return nil
}

func (s *SessionStore) AddPhoto(_ context.Context, p *models.Photo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[p.SessionID]; !ok {
		return store.ErrNotFound
	}
	p.CreatedAt = clock()
	s.photos[p.ID] = *p
	return nil
}

func (s *SessionStore) DeletePhoto(_ context.Context, sessionID, photoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.photos[photoID]
	if !ok || p.SessionID != sessionID {
		return store.ErrNotFound
	}
	delete(s.photos, photoID)
	return nil
}

var _ store.SessionStore = (*SessionStore)(nil)
