package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"cafe-backend/internal/domain"
	"cafe-backend/internal/report"
)

// OrderService owns the checkout transaction and the order lifecycle. The
// publisher and ticket generator are optional collaborators; nil disables them.
type OrderService struct {
	repo      OrderRepository
	publisher OrderEventPublisher
	tickets   QRGenerator
	logger    *log.Logger
}

func NewOrderService(repo OrderRepository, publisher OrderEventPublisher, tickets QRGenerator, logger *log.Logger) *OrderService {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &OrderService{repo: repo, publisher: publisher, tickets: tickets, logger: logger}
}

func (s *OrderService) Place(ctx context.Context, req OrderCreate) (*domain.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:        req.UserID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		PickupTime:    req.PickupTime,
		Notes:         req.Notes,
	}
	lines := make([]domain.OrderLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = domain.OrderLine{MenuID: item.MenuID, Quantity: item.Quantity, Options: item.Options}
	}

	if err := s.repo.PlaceOrder(order, lines); err != nil {
		return nil, err
	}
	s.logger.WithFields(log.Fields{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
		"items":        len(order.Items),
	}).Info("order placed")

	s.publish(ctx, order)

	return s.repo.GetOrder(order.ID)
}

func (s *OrderService) Get(id int) (*domain.Order, error) {
	return s.repo.GetOrder(id)
}

func (s *OrderService) List(f domain.OrderFilter) ([]domain.OrderSummary, error) {
	return s.repo.ListOrders(f)
}

func (s *OrderService) Update(ctx context.Context, id int, req OrderUpdate) (*domain.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	current, err := s.repo.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if req.Status != nil && *req.Status != current.Status {
		if !current.Status.CanTransitionTo(*req.Status) {
			return nil, domain.ErrInvalidTransition
		}
	}
	order, err := s.repo.UpdateOrder(id, req.Fields())
	if err != nil {
		return nil, err
	}
	if req.Status != nil && *req.Status != current.Status {
		s.logger.WithFields(log.Fields{
			"order_id": id,
			"from":     current.Status,
			"to":       *req.Status,
		}).Info("order status changed")
		s.publish(ctx, order)
	}
	return order, nil
}

func (s *OrderService) Delete(id int) error {
	return s.repo.DeleteOrder(id)
}

func (s *OrderService) Ticket(id int) ([]byte, error) {
	if s.tickets == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := s.repo.GetOrder(id); err != nil {
		return nil, err
	}
	return s.tickets.Generate(id)
}

func (s *OrderService) Report(from, to time.Time) ([]byte, error) {
	orders, err := s.repo.ListOrdersBetween(from, to)
	if err != nil {
		return nil, err
	}
	return report.RenderOrders(orders)
}

func (s *OrderService) publish(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	evt := domain.OrderEvent{
		OrderID:     order.ID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, evt); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("order event publish failed")
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
