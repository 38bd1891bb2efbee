package cart

import (
	"sync"

	"addis-kitchen/internal/domain"
)

// Line is one selected menu item in a session's cart. At most one Line
// exists per menu item id; quantity is always >= 1 while the line exists.
type Line struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"image_url,omitempty"`
}

// Totals is derived from the current lines on every read, never cached.
type Totals struct {
	ItemCount int     `json:"item_count"`
	Subtotal  float64 `json:"subtotal"`
}

// Store holds the cart for a single customer session.
type Store struct {
	mu    sync.Mutex
	lines map[string]*Line
	order []string
}

func NewStore() *Store {
	return &Store{lines: make(map[string]*Line)}
}

// AddItem inserts a new line with quantity 1, or bumps the quantity of the
// existing line for the same menu item.
func (s *Store) AddItem(item domain.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if line, ok := s.lines[item.ID]; ok {
		line.Quantity++
		return
	}
	s.lines[item.ID] = &Line{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
		ImageURL: item.ImageURL,
	}
	s.order = append(s.order, item.ID)
}

// UpdateQuantity sets the line's quantity; any value <= 0 removes the line.
func (s *Store) UpdateQuantity(itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(itemID)
		return
	}
	if line, ok := s.lines[itemID]; ok {
		line.Quantity = quantity
	}
}

// RemoveItem deletes the line if present; missing ids are a no-op.
func (s *Store) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(itemID)
}

func (s *Store) remove(itemID string) {
	if _, ok := s.lines[itemID]; !ok {
		return
	}
	delete(s.lines, itemID)
	for i, id := range s.order {
		if id == itemID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cart. Called after a successful order and available as
// an explicit customer action.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make(map[string]*Line)
	s.order = nil
}

// Lines returns the cart contents in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]Line, 0, len(s.order))
	for _, id := range s.order {
		lines = append(lines, *s.lines[id])
	}
	return lines
}

// Totals recomputes the item count and subtotal from the surviving lines.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t Totals
	for _, line := range s.lines {
		t.ItemCount += line.Quantity
		t.Subtotal += line.Price * float64(line.Quantity)
	}
	return t
}

// Manager owns one Store per customer session.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager() *Manager {
	return &Manager{stores: make(map[string]*Store)}
}

// Session returns the session's cart, creating it on first use.
func (m *Manager) Session(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, ok := m.stores[sessionID]
	if !ok {
		store = NewStore()
		m.stores[sessionID] = store
	}
	return store
}
