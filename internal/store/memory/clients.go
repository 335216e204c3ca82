package memory

import (
	"context"

	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store"
)

type ClientStore struct {
	base
	clients map[string]models.Client

	// Sessions, when set, is consulted to embed sessions on GetByID.
	Sessions *SessionStore
}

func NewClientStore() *ClientStore {
	return &ClientStore{clients: map[string]models.Client{}}
}

func (s *ClientStore) Create(_ context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := clock()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.clients[c.ID] = cloneClient(*c)
	return nil
}

func (s *ClientStore) GetByID(ctx context.Context, id string) (*models.Client, error) {
	s.mu.RLock()
	c, ok := s.clients[id]
	s.mu.RUnlock()
	if !ok {
		return nil, store.ErrNotFound
	}
	c = cloneClient(c)
	c.Sessions = []models.Session{}
	if s.Sessions != nil {
		all, err := s.Sessions.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, sess := range all {
			if sess.ClientID == id {
				sess.Client = nil
				c.Sessions = append(c.Sessions, sess)
			}
		}
	}
	return &c, nil
}

func (s *ClientStore) List(_ context.Context) ([]models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Client{}
	for _, id := range sortedKeys(s.clients) {
		out = append(out, cloneClient(s.clients[id]))
	}
	return out, nil
}

func (s *ClientStore) Update(_ context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.clients[c.ID]
	if !ok {
		return store.ErrNotFound
	}
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = clock()
	s.clients[c.ID] = cloneClient(*c)
	return nil
}

func (s *ClientStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.clients, id)
	return nil
}

var _ store.ClientStore = (*ClientStore)(nil)
