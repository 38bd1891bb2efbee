package service

import (
	"context"
	"fmt"
	"time"

	"addis-kitchen/internal/cart"
	"addis-kitchen/internal/domain"
)

type OrderService struct {
	carts     *cart.Manager
	menu      MenuServiceInterface
	repo      OrderRepository
	events    EventPublisher
	qrEncoder QRGenerator
}

func NewOrderService(carts *cart.Manager, menu MenuServiceInterface, repo OrderRepository, events EventPublisher, qr QRGenerator) *OrderService {
	return &OrderService{carts: carts, menu: menu, repo: repo, events: events, qrEncoder: qr}
}

// AddToCart resolves the menu item and snapshots its current price into the
// session cart. The price never gets re-read after this point.
func (s *OrderService) AddToCart(ctx context.Context, sessionID, menuItemID string) (cart.Totals, error) {
	item, err := s.menu.Get(ctx, menuItemID)
	if err != nil {
		return cart.Totals{}, fmt.Errorf("failed to look up menu item: %w", err)
	}
	if !item.Available {
		return cart.Totals{}, ErrItemUnavailable
	}

	store := s.carts.Session(sessionID)
	store.AddItem(*item)
	return store.Totals(), nil
}

func (s *OrderService) UpdateCartQuantity(sessionID, itemID string, quantity int) cart.Totals {
	store := s.carts.Session(sessionID)
	store.UpdateQuantity(itemID, quantity)
	return store.Totals()
}

func (s *OrderService) RemoveFromCart(sessionID, itemID string) cart.Totals {
	store := s.carts.Session(sessionID)
	store.RemoveItem(itemID)
	return store.Totals()
}

func (s *OrderService) ClearCart(sessionID string) {
	s.carts.Session(sessionID).Clear()
}

func (s *OrderService) Cart(sessionID string) ([]cart.Line, cart.Totals) {
	store := s.carts.Session(sessionID)
	return store.Lines(), store.Totals()
}

// Submit turns the session cart into one order row plus its item rows.
// Validation runs before any persistence call. The two inserts are not
// atomic: an items failure after the order insert surfaces as a
// PartialOrderError and the order row stays behind.
func (s *OrderService) Submit(ctx context.Context, sessionID string, customer domain.CustomerInfo) (string, error) {
	store := s.carts.Session(sessionID)
	lines := store.Lines()

	if len(lines) == 0 {
		return "", ErrEmptyCart
	}
	if customer.Name == "" {
		return "", fmt.Errorf("%w: customer_name", ErrMissingField)
	}
	if customer.Email == "" {
		return "", fmt.Errorf("%w: customer_email", ErrMissingField)
	}
	if customer.OrderType != domain.Pickup && customer.OrderType != domain.Delivery {
		return "", ErrInvalidOrderType
	}
	if customer.OrderType == domain.Delivery && customer.DeliveryAddress == "" {
		return "", ErrMissingDeliveryAddress
	}

	totals := store.Totals()
	order := &domain.Order{
		CustomerName:        customer.Name,
		CustomerEmail:       customer.Email,
		CustomerPhone:       customer.Phone,
		OrderType:           customer.OrderType,
		DeliveryAddress:     customer.DeliveryAddress,
		SpecialInstructions: customer.SpecialInstructions,
		TotalAmount:         totals.Subtotal,
		Status:              domain.OrderPending,
	}

	if err := s.repo.InsertOrder(ctx, order); err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderItem{
			MenuItemID: line.ItemID,
			Quantity:   line.Quantity,
			Price:      line.Price,
		})
	}

	if err := s.repo.InsertOrderItems(ctx, order.ID, items); err != nil {
		return order.ID, &PartialOrderError{OrderID: order.ID, Err: err}
	}

	store.Clear()

	if s.events != nil {
		_ = s.events.Publish(ctx, domain.Event{
			Type:      domain.EventOrderCreated,
			EntityID:  order.ID,
			Status:    string(order.Status),
			Timestamp: time.Now(),
		})
	}

	return order.ID, nil
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, orderID)
}

// PickupQRCode encodes the order's tracking link. Generated on demand and
// never persisted.
func (s *OrderService) PickupQRCode(orderID string) ([]byte, error) {
	return s.qrEncoder.Generate(orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
