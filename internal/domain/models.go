package domain

import "time"

// OrderStatus is the staff-driven order workflow state.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the enumerated order statuses.
// Staff overrides accept any enumerated value regardless of the current one.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// BookingStatus is the reservation workflow state.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// OrderType distinguishes how the customer receives the order.
type OrderType string

const (
	Pickup   OrderType = "pickup"
	Delivery OrderType = "delivery"
)

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Available   bool    `json:"available"`
}

type Order struct {
	ID                  string      `json:"id"`
	CustomerName        string      `json:"customer_name"`
	CustomerEmail       string      `json:"customer_email"`
	CustomerPhone       string      `json:"customer_phone,omitempty"`
	OrderType           OrderType   `json:"order_type"`
	DeliveryAddress     string      `json:"delivery_address,omitempty"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	TotalAmount         float64     `json:"total_amount"`
	Status              OrderStatus `json:"status"`
	CreatedAt           time.Time   `json:"created_at"`
	Items               []OrderItem `json:"items,omitempty"`
}

// OrderItem snapshots the unit price at submission time; later catalog
// price changes never touch it.
type OrderItem struct {
	ID         string  `json:"id,omitempty"`
	OrderID    string  `json:"order_id,omitempty"`
	MenuItemID string  `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type Booking struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customer_name"`
	CustomerEmail   string        `json:"customer_email"`
	CustomerPhone   string        `json:"customer_phone,omitempty"`
	BookingDate     string        `json:"booking_date"`
	BookingTime     string        `json:"booking_time"`
	PartySize       int           `json:"party_size"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
}

// CustomerInfo is the checkout form accompanying a cart at submission.
type CustomerInfo struct {
	Name                string    `json:"customer_name"`
	Email               string    `json:"customer_email"`
	Phone               string    `json:"customer_phone,omitempty"`
	OrderType           OrderType `json:"order_type"`
	DeliveryAddress     string    `json:"delivery_address,omitempty"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
}

// BookingInput is a reservation request before validation.
type BookingInput struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	BookingDate     string `json:"booking_date"`
	BookingTime     string `json:"booking_time"`
	PartySize       int    `json:"party_size"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// Event is the fire-and-forget lifecycle message published to Kafka.
// Delivery is not guaranteed; consumers must not be load-bearing.
type Event struct {
	Type      string    `json:"type"`
	EntityID  string    `json:"entity_id"`
	Status    string    `json:"status,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventOrderCreated   = "order_created"
	EventBookingCreated = "booking_created"
	EventStatusChanged  = "status_changed"
)
