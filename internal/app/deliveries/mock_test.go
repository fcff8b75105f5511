package deliveries_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wafflepopco/loyalty-core/internal/app/models"
	"github.com/wafflepopco/loyalty-core/internal/app/stores"
)

// memStore backs the handler tests without a database.
type memStore struct {
	mu           sync.RWMutex
	users        map[string]*models.User
	transactions []models.PointTransaction
	redemptions  []models.Redemption
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]*models.User)}
}

func (m *memStore) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Name, user.Name) {
			return stores.ErrDuplicate
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Name, name) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (m *memStore) ListUsers(ctx context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (m *memStore) AddPoints(ctx context.Context, userID string, points int, trx *models.PointTransaction) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil, stores.ErrNotFound
	}
	u.CurrentPoints += points
	u.LifetimePoints += points
	m.transactions = append(m.transactions, *trx)
	cp := *u
	return &cp, nil
}

func (m *memStore) ListTransactions(ctx context.Context, limit int) ([]models.PointTransaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.PointTransaction, 0, len(m.transactions))
	for i := len(m.transactions) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.transactions[i])
	}
	return out, nil
}

func (m *memStore) Redeem(ctx context.Context, userID string, cost int, redemption *models.Redemption, trx *models.PointTransaction) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil, stores.ErrNotFound
	}
	u.CurrentPoints -= cost
	m.redemptions = append(m.redemptions, *redemption)
	m.transactions = append(m.transactions, *trx)
	cp := *u
	return &cp, nil
}

func (m *memStore) ListRedemptions(ctx context.Context, limit int) ([]models.Redemption, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Redemption, 0, len(m.redemptions))
	for i := len(m.redemptions) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.redemptions[i])
	}
	return out, nil
}

func (m *memStore) ListUserRedemptions(ctx context.Context, userID string, limit int) ([]models.Redemption, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Redemption{}
	for i := len(m.redemptions) - 1; i >= 0 && len(out) < limit; i-- {
		if m.redemptions[i].UserID == userID {
			out = append(out, m.redemptions[i])
		}
	}
	return out, nil
}

func (m *memStore) MarkClaimed(ctx context.Context, redemptionID string, at time.Time) (*models.Redemption, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.redemptions {
		if m.redemptions[i].ID == redemptionID {
			m.redemptions[i].Claimed = true
			m.redemptions[i].ClaimedAt = &at
			cp := m.redemptions[i]
			return &cp, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (m *memStore) Leaderboard(ctx context.Context, limit int) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LifetimePoints != out[j].LifetimePoints {
			return out[i].LifetimePoints > out[j].LifetimePoints
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ stores.Store = (*memStore)(nil)
