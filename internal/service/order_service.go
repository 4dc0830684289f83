package service

import (
	"context"
	"log/slog"

	"github.com/JoseSC30/superburguer-miniapp/internal/apperrors"
	"github.com/JoseSC30/superburguer-miniapp/internal/cart"
	"github.com/JoseSC30/superburguer-miniapp/internal/events"
	"github.com/JoseSC30/superburguer-miniapp/internal/models"
	"github.com/JoseSC30/superburguer-miniapp/internal/notify"
	"github.com/JoseSC30/superburguer-miniapp/internal/store"
)

// OrderService owns the order lifecycle: creation from a cart payload,
// status changes, and the notifications they trigger.
type OrderService struct {
	store     store.OrderStore
	catalog   *CatalogService
	publisher events.Publisher
	sender    notify.Sender
	logger    *slog.Logger
}

func NewOrderService(
	orderStore store.OrderStore,
	catalog *CatalogService,
	publisher events.Publisher,
	sender notify.Sender,
	logger *slog.Logger,
) *OrderService {
	return &OrderService{
		store:     orderStore,
		catalog:   catalog,
		publisher: publisher,
		sender:    sender,
		logger:    logger,
	}
}

// CreateOrder validates the payload, prices any catalog-referenced items
// that arrived without a price, stores the order and confirms it to the
// requester. The confirmation is sent asynchronously; its failure never
// affects the created order.
func (s *OrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	s.logger.Info("creating order",
		"requester_id", req.RequesterID,
		"item_count", len(req.Items),
	)

	if err := ValidateCreateOrderRequest(req); err != nil {
		return nil, err
	}

	items, err := s.priceItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	// The caller-supplied total is trusted when present (the Mini App
	// computes it client-side); otherwise it is derived from the priced
	// items.
	total := req.Total
	if total == 0 {
		c := cart.New()
		for _, item := range items {
			c.AddQuantity(models.Product{
				ID:    item.ProductID,
				Name:  item.Name,
				Price: item.UnitPrice,
			}, item.Quantity)
		}
		total = c.Total()
	}

	order, err := s.store.Create(ctx, req.RequesterID, req.UserID, items, total)
	if err != nil {
		s.logger.Error("failed to create order",
			"requester_id", req.RequesterID,
			"error", err,
		)
		return nil, err
	}

	if err := s.publisher.PublishOrderCreated(ctx, order); err != nil {
		// Log but don't fail
		s.logger.Error("failed to publish order created event",
			"order_id", order.ID,
			"error", err,
		)
	}

	go s.sendOrderConfirmation(context.Background(), order, req.UserName)

	s.logger.Info("order created",
		"order_id", order.ID,
		"total", order.Total,
	)

	return order, nil
}

// priceItems resolves name and unit price from the catalog for items that
// arrived as bare {product_id, quantity} references. Already-priced items
// pass through untouched.
func (s *OrderService) priceItems(ctx context.Context, items []models.OrderItem) ([]models.OrderItem, error) {
	needsCatalog := false
	for _, item := range items {
		if item.UnitPrice == 0 {
			needsCatalog = true
			break
		}
	}
	if !needsCatalog {
		return items, nil
	}

	products, err := s.catalog.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	priced := make([]models.OrderItem, len(items))
	for i, item := range items {
		if item.UnitPrice != 0 {
			priced[i] = item
			continue
		}
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, apperrors.NewValidationError("items", "unknown product: "+item.ProductID)
		}
		if !product.Active {
			return nil, apperrors.NewValidationError("items", "product not available: "+product.Name)
		}
		item.Name = product.Name
		item.UnitPrice = product.Price
		priced[i] = item
	}

	return priced, nil
}

// GetOrder retrieves an order by id.
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	return s.store.Get(ctx, id)
}

// ListOrders returns the requester's orders in creation order.
func (s *OrderService) ListOrders(ctx context.Context, requesterID string) ([]*models.Order, error) {
	return s.store.ListByRequester(ctx, requesterID)
}

// UpdateStatus overwrites the order's status and notifies the requester.
// The store mutation and the notification are two independent steps: a
// delivery failure is returned to the caller but the new status stays.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	s.logger.Info("updating order status",
		"order_id", id,
		"new_status", req.Status,
	)

	if err := ValidateUpdateOrderStatusRequest(req); err != nil {
		return nil, err
	}

	current, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := current.Status

	order, err := s.store.SetStatus(ctx, id, req.Status)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.PublishOrderStatusChanged(ctx, order, previous); err != nil {
		// Log but don't fail
		s.logger.Error("failed to publish status changed event",
			"order_id", order.ID,
			"error", err,
		)
	}

	if err := s.sender.SendMessage(ctx, order.RequesterID, notify.StatusUpdate(order)); err != nil {
		s.logger.Error("failed to notify status change",
			"order_id", order.ID,
			"requester_id", order.RequesterID,
			"error", err,
		)
		return order, err
	}

	return order, nil
}

// OrderCount reports how many orders the store holds.
func (s *OrderService) OrderCount() int {
	return s.store.Count()
}

func (s *OrderService) sendOrderConfirmation(ctx context.Context, order *models.Order, userName string) {
	if err := s.sender.SendMessage(ctx, order.RequesterID, notify.OrderReceived(order, userName)); err != nil {
		s.logger.Error("failed to send order confirmation",
			"order_id", order.ID,
			"requester_id", order.RequesterID,
			"error", err,
		)
	}
}
