package memory

import (
	"context"

	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store"
)

type EquipmentStore struct {
	base
	equipments map[string]models.Equipment
}

func NewEquipmentStore() *EquipmentStore {
	return &EquipmentStore{equipments: map[string]models.Equipment{}}
}

func (s *EquipmentStore) Create(_ context.Context, e *models.Equipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := clock()
	e.CreatedAt = now
	e.UpdatedAt = now
	s.equipments[e.ID] = *e
	return nil
}

func (s *EquipmentStore) GetByID(_ context.Context, id string) (*models.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.equipments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &e, nil
}

func (s *EquipmentStore) List(_ context.Context) ([]models.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Equipment{}
	for _, id := range sortedKeys(s.equipments) {
		out = append(out, s.equipments[id])
	}
	return out, nil
}

func (s *EquipmentStore) Update(_ context.Context, e *models.Equipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.equipments[e.ID]
	if !ok {
		return store.ErrNotFound
	}
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = clock()
	s.equipments[e.ID] = *e
	return nil
}

func (s *EquipmentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.equipments[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.equipments, id)
	return nil
}

var _ store.EquipmentStore = (*EquipmentStore)(nil)

type TransactionStore struct {
	base
	transactions map[string]models.Transaction
}

func NewTransactionStore() *TransactionStore {
	return &TransactionStore{transactions: map[string]models.Transaction{}}
}

func (s *TransactionStore) Create(_ context.Context, t *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := clock()
	t.CreatedAt = now
	t.UpdatedAt = now
	s.transactions[t.ID] = *t
	return nil
}

func (s *TransactionStore) GetByID(_ context.Context, id string) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transactions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &t, nil
}

func (s *TransactionStore) List(_ context.Context) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Transaction{}
	for _, id := range sortedKeys(s.transactions) {
		out = append(out, s.transactions[id])
	}
	return out, nil
}

func (s *TransactionStore) Update(_ context.Context, t *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.transactions[t.ID]
	if !ok {
		return store.ErrNotFound
	}
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = clock()
	s.transactions[t.ID] = *t
	return nil
}

func (s *TransactionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.transactions, id)
	return nil
}

var _ store.TransactionStore = (*TransactionStore)(nil)

type SystemConfigStore struct {
	base
	configs map[string]models.SystemConfig // keyed by config key
}

func NewSystemConfigStore() *SystemConfigStore {
	return &SystemConfigStore{configs: map[string]models.SystemConfig{}}
}

func (s *SystemConfigStore) Create(_ context.Context, c *models.SystemConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.configs[c.Key]; ok {
		return store.ErrDuplicate
	}
	now := clock()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.configs[c.Key] = *c
	return nil
}

func (s *SystemConfigStore) GetByKey(_ context.Context, key string) (*models.SystemConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.configs[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

func (s *SystemConfigStore) List(_ context.Context) ([]models.SystemConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.SystemConfig{}
	for _, key := range sortedKeys(s.configs) {
		out = append(out, s.configs[key])
	}
	return out, nil
}

func (s *SystemConfigStore) UpdateByKey(_ context.Context, c *models.SystemConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.configs[c.Key]
	if !ok {
		return store.ErrNotFound
	}
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = clock()
	s.configs[c.Key] = *c
	return nil
}

func (s *SystemConfigStore) DeleteByKey(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.configs[key]; !ok {
		return store.ErrNotFound
	}
	delete(s.configs, key)
	return nil
}

var _ store.SystemConfigStore = (*SystemConfigStore)(nil)
