package service

import (
	"context"
	"fmt"
	"time"

	"addis-kitchen/internal/domain"
)

type BookingService struct {
	repo   BookingRepository
	events EventPublisher
	now    func() time.Time
}

func NewBookingService(repo BookingRepository, events EventPublisher) *BookingService {
	return &BookingService{repo: repo, events: events, now: time.Now}
}

// Submit validates the reservation request and persists it with status
// pending. Acceptance is advisory: no availability check happens here,
// staff confirm or cancel later.
func (s *BookingService) Submit(ctx context.Context, input domain.BookingInput) (string, error) {
	switch {
	case input.CustomerName == "":
		return "", fmt.Errorf("%w: customer_name", ErrMissingField)
	case input.CustomerEmail == "":
		return "", fmt.Errorf("%w: customer_email", ErrMissingField)
	case input.BookingDate == "":
		return "", fmt.Errorf("%w: booking_date", ErrMissingField)
	case input.BookingTime == "":
		return "", fmt.Errorf("%w: booking_time", ErrMissingField)
	case input.PartySize < 1:
		return "", fmt.Errorf("%w: party_size", ErrMissingField)
	}

	when, err := time.ParseInLocation("2006-01-02 15:04", input.BookingDate+" "+input.BookingTime, time.Local)
	if err != nil {
		return "", fmt.Errorf("%w: %q %q", ErrInvalidDateTime, input.BookingDate, input.BookingTime)
	}
	if !when.After(s.now()) {
		return "", ErrPastDate
	}

	booking := &domain.Booking{
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		BookingDate:     input.BookingDate,
		BookingTime:     input.BookingTime,
		PartySize:       input.PartySize,
		SpecialRequests: input.SpecialRequests,
		Status:          domain.BookingPending,
	}
	if err := s.repo.InsertBooking(ctx, booking); err != nil {
		return "", fmt.Errorf("failed to create booking: %w", err)
	}

	if s.events != nil {
		_ = s.events.Publish(ctx, domain.Event{
			Type:      domain.EventBookingCreated,
			EntityID:  booking.ID,
			Status:    string(booking.Status),
			Timestamp: time.Now(),
		})
	}

	return booking.ID, nil
}

var _ BookingServiceInterface = (*BookingService)(nil)
