package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store"
)

type QuoteStore struct {
	base
	quotes map[string]models.Quote
	items  map[string]models.QuoteItem

	Clients *ClientStore
}

func NewQuoteStore() *QuoteStore {
	return &QuoteStore{
		quotes: map[string]models.Quote{},
		items:  map[string]models.QuoteItem{},
	}
}

func (s *QuoteStore) writeItems(quoteID string, items []models.QuoteItem) []models.QuoteItem {
	out := make([]models.QuoteItem, 0, len(items))
	now := clock()
	for _, it := range items {
		it.ID = uuid.New().String()
		it.QuoteID = quoteID
		it.Total = float64(it.Quantity) * it.UnitPrice
		it.CreatedAt = now
		it.UpdatedAt = now
		s.items[it.ID] = it
		out = append(out, it)
	}
	return out
}

func (s *QuoteStore) Create(_ context.Context, q *models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := clock()
	q.CreatedAt = now
	q.UpdatedAt = now
	items := s.writeItems(q.ID, q.Items)
	s.quotes[q.ID] = cloneQuote(*q)
	q.Items = items
	return nil
}

func (s *QuoteStore) attach(q *models.Quote) {
	q.Items = []models.QuoteItem{}
	s.mu.RLock()
	for _, it := range s.items {
		if it.QuoteID == q.ID {
			q.Items = append(q.Items, it)
		}
	}
	s.mu.RUnlock()
	sort.Slice(q.Items, func(i, j int) bool { return q.Items[i].ID < q.Items[j].ID })

	if s.Clients != nil {
		s.Clients.mu.RLock()
		if c, ok := s.Clients.clients[q.ClientID]; ok {
			c = cloneClient(c)
			q.Client = &c
		}
		s.Clients.mu.RUnlock()
	}
}

func (s *QuoteStore) GetByID(_ context.Context, id string) (*models.Quote, error) {
	s.mu.RLock()
	q, ok := s.quotes[id]
	s.mu.RUnlock()
	if !ok {
		return nil, store.ErrNotFound
	}
	q = cloneQuote(q)
	s.attach(&q)
	return &q, nil
}

func (s *QuoteStore) List(_ context.Context) ([]models.Quote, error) {
	s.mu.RLock()
	out := []models.Quote{}
	for _, id := range sortedKeys(s.quotes) {
		out = append(out, cloneQuote(s.quotes[id]))
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	for i := range out {
		s.attach(&out[i])
	}
	return out, nil
}

func (s *QuoteStore) Update(_ context.Context, q *models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.quotes[q.ID]
	if !ok {
		return store.ErrNotFound
	}
	for id, it := range s.items {
		if it.QuoteID == q.ID {
			delete(s.items, id)
		}
	}
	items := s.writeItems(q.ID, q.Items)
	q.CreatedAt = existing.CreatedAt
	q.UpdatedAt = clock()
	s.quotes[q.ID] = cloneQuote(*q)
	q.Items = items
	return nil
}

func (s *QuoteStore) UpdateStatus(_ context.Context, id string, status models.QuoteStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quotes[id]
	if !ok {
		return store.ErrNotFound
	}
	q.Status = status
	q.UpdatedAt = clock()
	s.quotes[id] = q
	return nil
}

func (s *QuoteStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quotes[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.quotes, id)
	for iid, it := range s.items {
		if it.QuoteID == id {
			delete(s.items, iid)
		}
	}
	return nil
}

// ItemRows returns the ids of all stored item rows, for tests asserting the
// delete-then-recreate semantics.
func (s *QuoteStore) ItemRows() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.items)
}

var _ store.QuoteStore = (*QuoteStore)(nil)
