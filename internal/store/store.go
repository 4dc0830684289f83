package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/JoseSC30/superburguer-miniapp/internal/apperrors"
	"github.com/JoseSC30/superburguer-miniapp/internal/models"
)

// OrderStore holds every order for the lifetime of the process.
type OrderStore interface {
	Create(ctx context.Context, requesterID, userID string, items []models.OrderItem, total float64) (*models.Order, error)
	Get(ctx context.Context, id int64) (*models.Order, error)
	// SetStatus overwrites the status unconditionally; any status may
	// follow any other.
	SetStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*models.Order, error)
	Count() int
}

// MemoryOrderStore is the in-memory OrderStore. Orders are lost on restart
// and the map grows unbounded; both are accepted limitations.
type MemoryOrderStore struct {
	mu     sync.Mutex
	orders map[int64]*models.Order
	nextID int64
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{
		orders: make(map[int64]*models.Order),
		nextID: 1,
	}
}

func (s *MemoryOrderStore) Create(ctx context.Context, requesterID, userID string, items []models.OrderItem, total float64) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := &models.Order{
		ID:          s.nextID,
		RequesterID: requesterID,
		UserID:      userID,
		Items:       append([]models.OrderItem(nil), items...),
		Total:       total,
		Status:      models.OrderStatusPending,
		CreatedAt:   time.Now(),
	}
	s.nextID++
	s.orders[order.ID] = order

	return copyOrder(order), nil
}

func (s *MemoryOrderStore) Get(ctx context.Context, id int64) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return copyOrder(order), nil
}

func (s *MemoryOrderStore) SetStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	order.Status = status
	return copyOrder(order), nil
}

func (s *MemoryOrderStore) ListByRequester(ctx context.Context, requesterID string) ([]*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]*models.Order, 0)
	for _, order := range s.orders {
		if order.RequesterID == requesterID {
			orders = append(orders, copyOrder(order))
		}
	}
	// Creation order; ids are assigned monotonically.
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })

	return orders, nil
}

func (s *MemoryOrderStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func copyOrder(o *models.Order) *models.Order {
	c := *o
	c.Items = append([]models.OrderItem(nil), o.Items...)
	return &c
}
