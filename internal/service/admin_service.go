package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"addis-kitchen/internal/domain"
)

// AdminService holds the staff-facing order and booking collections. They
// are refreshed in full rather than incrementally synchronized, so two staff
// sessions may see stale views of each other's edits until their next
// refresh.
type AdminService struct {
	orders   OrderRepository
	bookings BookingRepository
	cache    AdminCache
	events   EventPublisher
	notifier Notifier

	mu          sync.Mutex
	orderList   []domain.Order
	bookingList []domain.Booking
}

func NewAdminService(orders OrderRepository, bookings BookingRepository, cache AdminCache, events EventPublisher, notifier Notifier) *AdminService {
	return &AdminService{orders: orders, bookings: bookings, cache: cache, events: events, notifier: notifier}
}

// RefreshOrders replaces the local collection, serving repeated refreshes
// from the snapshot cache while it is warm.
func (s *AdminService) RefreshOrders(ctx context.Context) error {
	if s.cache != nil {
		if list, ok := s.cache.GetOrders(ctx); ok {
			s.mu.Lock()
			s.orderList = list
			s.mu.Unlock()
			return nil
		}
	}
	list, err := s.orders.ListOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch orders: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.SetOrders(ctx, list)
	}
	s.mu.Lock()
	s.orderList = list
	s.mu.Unlock()
	return nil
}

func (s *AdminService) RefreshBookings(ctx context.Context) error {
	if s.cache != nil {
		if list, ok := s.cache.GetBookings(ctx); ok {
			s.mu.Lock()
			s.bookingList = list
			s.mu.Unlock()
			return nil
		}
	}
	list, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch bookings: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.SetBookings(ctx, list)
	}
	s.mu.Lock()
	s.bookingList = list
	s.mu.Unlock()
	return nil
}

var orderFields = []FieldExtractor[domain.Order]{
	func(o domain.Order) string { return o.CustomerName },
	func(o domain.Order) string { return o.CustomerEmail },
	func(o domain.Order) string { return o.ID },
}

var bookingFields = []FieldExtractor[domain.Booking]{
	func(b domain.Booking) string { return b.CustomerName },
	func(b domain.Booking) string { return b.CustomerEmail },
	func(b domain.Booking) string { return b.ID },
}

func (s *AdminService) Orders(query string) []domain.Order {
	s.mu.Lock()
	list := make([]domain.Order, len(s.orderList))
	copy(list, s.orderList)
	s.mu.Unlock()
	return Filter(list, query, orderFields)
}

func (s *AdminService) Bookings(query string) []domain.Booking {
	s.mu.Lock()
	list := make([]domain.Booking, len(s.bookingList))
	copy(list, s.bookingList)
	s.mu.Unlock()
	return Filter(list, query, bookingFields)
}

// SetOrderStatus overrides the order's status. Any enumerated value is
// accepted from any prior status; this is an override tool, not a state
// machine gate. The local entry is updated before the persistence call, and
// a persistence failure only surfaces through the notifier.
func (s *AdminService) SetOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if !domain.ValidOrderStatus(status) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	for i := range s.orderList {
		if s.orderList[i].ID == orderID {
			s.orderList[i].Status = status
			break
		}
	}
	s.mu.Unlock()

	if err := s.orders.UpdateOrderStatus(ctx, orderID, status); err != nil {
		s.notifier.Error(fmt.Sprintf("failed to update order %s status: %v", orderID, err))
		return nil
	}
	if s.cache != nil {
		_ = s.cache.InvalidateOrders(ctx)
	}

	s.notifier.Success(fmt.Sprintf("order %s set to %s", orderID, status))
	if s.events != nil {
		_ = s.events.Publish(ctx, domain.Event{
			Type:      domain.EventStatusChanged,
			EntityID:  orderID,
			Status:    string(status),
			Timestamp: time.Now(),
		})
	}
	return nil
}

// SetBookingStatus mirrors SetOrderStatus for reservations.
func (s *AdminService) SetBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error {
	if !domain.ValidBookingStatus(status) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	for i := range s.bookingList {
		if s.bookingList[i].ID == bookingID {
			s.bookingList[i].Status = status
			break
		}
	}
	s.mu.Unlock()

	if err := s.bookings.UpdateBookingStatus(ctx, bookingID, status); err != nil {
		s.notifier.Error(fmt.Sprintf("failed to update booking %s status: %v", bookingID, err))
		return nil
	}
	if s.cache != nil {
		_ = s.cache.InvalidateBookings(ctx)
	}

	s.notifier.Success(fmt.Sprintf("booking %s set to %s", bookingID, status))
	if s.events != nil {
		_ = s.events.Publish(ctx, domain.Event{
			Type:      domain.EventStatusChanged,
			EntityID:  bookingID,
			Status:    string(status),
			Timestamp: time.Now(),
		})
	}
	return nil
}

var _ AdminServiceInterface = (*AdminService)(nil)
