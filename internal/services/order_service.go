package services

import (
	"log"
	"strings"

	"butik/internal/apperr"
	"butik/internal/models"
	"butik/internal/repositories"
	"butik/pkg/rabbitmq"
)

// legal single-step transitions when strict checking is enabled.
var strictTransitions = map[string][]string{
	models.DeliveryPending: {models.DeliveryShipped, models.DeliveryCancelled},
	models.DeliveryShipped: {models.DeliveryDelivered},
}

// OrderService handles business logic related to orders. Orders themselves
// are created by CheckoutService; this service only reads them and moves
// delivery status.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client // nil skips event publication
	strict    bool
}

// NewOrderService creates a new OrderService. With strict enabled, delivery
// status may only move along pending -> shipped -> delivered (or pending ->
// cancelled); otherwise any enumerated status is accepted from any state,
// which doubles as a manual override for support staff.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client, strict bool) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
		strict:    strict,
	}
}

// GetAllOrders retrieves all orders (manager view).
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrdersByUser retrieves the orders of one user.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, apperr.NotFound("order %s not found", id)
		}
		return nil, err
	}
	return order, nil
}

// UpdateDeliveryStatus moves an order's delivery status.
func (s *OrderService) UpdateDeliveryStatus(id string, status string) error {
	if !models.ValidDeliveryStatus(status) {
		return apperr.Validation("invalid delivery status: %s", status)
	}

	order, err := s.GetOrderByID(id)
	if err != nil {
		return err
	}

	if s.strict {
		allowed := false
		for _, next := range strictTransitions[order.DeliveryStatus] {
			if next == status {
				allowed = true
				break
			}
		}
		if !allowed {
			return apperr.Validation("illegal delivery transition %s -> %s", order.DeliveryStatus, status)
		}
	}

	if err := s.orderRepo.UpdateDeliveryStatus(id, status); err != nil {
		return err
	}

	if s.mqClient != nil {
		ev := rabbitmq.OrderStatusEvent{OrderID: id, DeliveryStatus: status}
		if err := s.mqClient.PublishOrderStatusUpdated(ev); err != nil {
			log.Printf("Warning: Failed to publish status update event for order %s: %v", id, err)
		}
	}
	return nil
}
