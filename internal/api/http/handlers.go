package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"addis-kitchen/internal/domain"
	"addis-kitchen/internal/service"
)

type Handler struct {
	Menu     service.MenuServiceInterface
	Orders   service.OrderServiceInterface
	Bookings service.BookingServiceInterface
	Admin    service.AdminServiceInterface
}

func NewHandler(menuSvc service.MenuServiceInterface, orderSvc service.OrderServiceInterface, bookingSvc service.BookingServiceInterface, adminSvc service.AdminServiceInterface) *Handler {
	return &Handler{
		Menu:     menuSvc,
		Orders:   orderSvc,
		Bookings: bookingSvc,
		Admin:    adminSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router, roles RoleProvider) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{itemId}", h.updateCartItem).Methods("PATCH")
	r.HandleFunc("/api/cart/items/{itemId}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/orders", h.submitOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/bookings", h.submitBooking).Methods("POST")

	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(RequireAdmin(roles))
	admin.HandleFunc("/orders", h.adminOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}/status", h.setOrderStatus).Methods("PATCH")
	admin.HandleFunc("/bookings", h.adminBookings).Methods("GET")
	admin.HandleFunc("/bookings/{id}/status", h.setBookingStatus).Methods("PATCH")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// sessionID identifies the customer's cart. Carts are private to one
// session; there is no cross-session sharing.
func sessionID(r *http.Request) string {
	return r.Header.Get("X-Session-ID")
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		http.Error(w, "X-Session-ID header is required", http.StatusBadRequest)
		return
	}
	lines, totals := h.Orders.Cart(session)
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": lines, "totals": totals})
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		http.Error(w, "X-Session-ID header is required", http.StatusBadRequest)
		return
	}

	var payload struct {
		MenuItemID string `json:"menu_item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.MenuItemID == "" {
		http.Error(w, "menu_item_id is required", http.StatusBadRequest)
		return
	}

	totals, err := h.Orders.AddToCart(r.Context(), session, payload.MenuItemID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemUnavailable):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, sql.ErrNoRows):
			http.Error(w, "Menu item not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"totals": totals})
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		http.Error(w, "X-Session-ID header is required", http.StatusBadRequest)
		return
	}

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	totals := h.Orders.UpdateCartQuantity(session, mux.Vars(r)["itemId"], payload.Quantity)
	writeJSON(w, http.StatusOK, map[string]interface{}{"totals": totals})
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		http.Error(w, "X-Session-ID header is required", http.StatusBadRequest)
		return
	}
	totals := h.Orders.RemoveFromCart(session, mux.Vars(r)["itemId"])
	writeJSON(w, http.StatusOK, map[string]interface{}{"totals": totals})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		http.Error(w, "X-Session-ID header is required", http.StatusBadRequest)
		return
	}
	h.Orders.ClearCart(session)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		http.Error(w, "X-Session-ID header is required", http.StatusBadRequest)
		return
	}

	var customer domain.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	orderID, err := h.Orders.Submit(r.Context(), session, customer)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart),
			errors.Is(err, service.ErrMissingField),
			errors.Is(err, service.ErrMissingDeliveryAddress),
			errors.Is(err, service.ErrInvalidOrderType):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrPartialOrder):
			// The order row exists; callers get its id along with the failure.
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error":    err.Error(),
				"order_id": orderID,
			})
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"order_id": orderID, "status": string(domain.OrderPending)})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Orders.PickupQRCode(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) submitBooking(w http.ResponseWriter, r *http.Request) {
	var input domain.BookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	bookingID, err := h.Bookings.Submit(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField),
			errors.Is(err, service.ErrInvalidDateTime),
			errors.Is(err, service.ErrPastDate):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"booking_id": bookingID, "status": string(domain.BookingPending)})
}

func (h *Handler) adminOrders(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.RefreshOrders(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.Admin.Orders(r.URL.Query().Get("q")))
}

func (h *Handler) adminBookings(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.RefreshBookings(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.Admin.Bookings(r.URL.Query().Get("q")))
}

func (h *Handler) setOrderStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	orderID := mux.Vars(r)["id"]
	if err := h.Admin.SetOrderStatus(r.Context(), orderID, payload.Status); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": orderID, "status": string(payload.Status)})
}

func (h *Handler) setBookingStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status domain.BookingStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bookingID := mux.Vars(r)["id"]
	if err := h.Admin.SetBookingStatus(r.Context(), bookingID, payload.Status); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": bookingID, "status": string(payload.Status)})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
