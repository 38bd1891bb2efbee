package service

import (
	"context"

	"addis-kitchen/internal/cart"
	"addis-kitchen/internal/domain"
)

type MenuRepository interface {
	ListAvailable(ctx context.Context) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
}

type OrderRepository interface {
	InsertOrder(ctx context.Context, order *domain.Order) error
	InsertOrderItems(ctx context.Context, orderID string, items []domain.OrderItem) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type BookingRepository interface {
	InsertBooking(ctx context.Context, booking *domain.Booking) error
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

type MenuCache interface {
	GetMenu(ctx context.Context) ([]domain.MenuItem, bool)
	SetMenu(ctx context.Context, items []domain.MenuItem) error
}

type AdminCache interface {
	GetOrders(ctx context.Context) ([]domain.Order, bool)
	SetOrders(ctx context.Context, orders []domain.Order) error
	InvalidateOrders(ctx context.Context) error
	GetBookings(ctx context.Context) ([]domain.Booking, bool)
	SetBookings(ctx context.Context, bookings []domain.Booking) error
	InvalidateBookings(ctx context.Context) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// Notifier is the toast sink: purely observational, no return value consumed.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type MenuServiceInterface interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
}

type OrderServiceInterface interface {
	AddToCart(ctx context.Context, sessionID, menuItemID string) (cart.Totals, error)
	UpdateCartQuantity(sessionID, itemID string, quantity int) cart.Totals
	RemoveFromCart(sessionID, itemID string) cart.Totals
	ClearCart(sessionID string)
	Cart(sessionID string) ([]cart.Line, cart.Totals)
	Submit(ctx context.Context, sessionID string, customer domain.CustomerInfo) (string, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	PickupQRCode(orderID string) ([]byte, error)
}

type BookingServiceInterface interface {
	Submit(ctx context.Context, input domain.BookingInput) (string, error)
}

type AdminServiceInterface interface {
	RefreshOrders(ctx context.Context) error
	RefreshBookings(ctx context.Context) error
	Orders(query string) []domain.Order
	Bookings(query string) []domain.Booking
	SetOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	SetBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error
}
