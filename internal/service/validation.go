package service

import (
	"github.com/JoseSC30/superburguer-miniapp/internal/apperrors"
	"github.com/JoseSC30/superburguer-miniapp/internal/models"
)

// ValidateCreateOrderRequest rejects malformed cart payloads before they
// reach the store.
func ValidateCreateOrderRequest(req *models.CreateOrderRequest) error {
	if req.RequesterID == "" {
		return apperrors.NewValidationError("requester_id", "requester ID is required")
	}

	if len(req.Items) == 0 {
		return apperrors.NewValidationError("items", "at least one item is required")
	}

	for _, item := range req.Items {
		if err := validateOrderItem(&item); err != nil {
			return err
		}
	}

	if req.Total < 0 {
		return apperrors.NewValidationError("total", "total cannot be negative")
	}

	return nil
}

func validateOrderItem(item *models.OrderItem) error {
	if item.ProductID == "" {
		return apperrors.NewValidationError("items", "product ID is required for item")
	}

	if item.Quantity <= 0 {
		return apperrors.NewValidationError("items", "quantity must be positive")
	}

	if item.UnitPrice < 0 {
		return apperrors.NewValidationError("items", "unit price cannot be negative")
	}

	return nil
}

// ValidateUpdateOrderStatusRequest validates a status update request.
// Any known status may follow any other; only the value itself is checked.
func ValidateUpdateOrderStatusRequest(req *models.UpdateOrderStatusRequest) error {
	if req.Status == "" {
		return apperrors.NewValidationError("status", "status is required")
	}

	switch req.Status {
	case models.OrderStatusPending,
		models.OrderStatusPreparing,
		models.OrderStatusDelivering,
		models.OrderStatusDelivered,
		models.OrderStatusConfirmed:
		// Valid status
	default:
		return apperrors.NewValidationError("status", "invalid order status")
	}

	return nil
}
