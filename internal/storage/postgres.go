package storage

import (
	"context"
	"database/sql"
	"fmt"

	"addis-kitchen/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) ListAvailable(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(description, ''), category, price, COALESCE(image_url, ''), COALESCE(available, true)
		FROM menu_items
		WHERE available = true
		ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Category, &item.Price, &item.ImageURL, &item.Available); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(description, ''), category, price, COALESCE(image_url, ''), COALESCE(available, true)
		FROM menu_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Description, &item.Category, &item.Price, &item.ImageURL, &item.Available)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO orders (customer_name, customer_email, customer_phone, order_type, delivery_address, special_instructions, total_amount, status)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8)
		RETURNING id, created_at`,
		order.CustomerName, order.CustomerEmail, order.CustomerPhone, order.OrderType,
		order.DeliveryAddress, order.SpecialInstructions, order.TotalAmount, order.Status).
		Scan(&order.ID, &order.CreatedAt)
}

// InsertOrderItems writes the item batch in one tx so a batch is
// all-or-nothing. The order row it references was inserted separately and
// stays behind if this fails.
func (r *PostgresRepository) InsertOrderItems(ctx context.Context, orderID string, items []domain.OrderItem) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, item := range items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, quantity, price)
			VALUES ($1, $2, $3, $4)`,
			orderID, item.MenuItemID, item.Quantity, item.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	var phone, address, instructions sql.NullString
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, customer_name, customer_email, customer_phone, order_type, delivery_address, special_instructions, total_amount, status, created_at
		FROM orders WHERE id = $1`, id).
		Scan(&order.ID, &order.CustomerName, &order.CustomerEmail, &phone, &order.OrderType,
			&address, &instructions, &order.TotalAmount, &order.Status, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	order.CustomerPhone = phone.String
	order.DeliveryAddress = address.String
	order.SpecialInstructions = instructions.String

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, menu_item_id, quantity, price
		FROM order_items
		WHERE order_id = $1`, id)
	if err != nil {
		return &order, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, &item.Price); err != nil {
			continue
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}

func (r *PostgresRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, customer_name, customer_email, COALESCE(customer_phone, ''), order_type, COALESCE(delivery_address, ''), COALESCE(special_instructions, ''), total_amount, status, created_at
		FROM orders
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CustomerName, &order.CustomerEmail, &order.CustomerPhone,
			&order.OrderType, &order.DeliveryAddress, &order.SpecialInstructions,
			&order.TotalAmount, &order.Status, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	result, err := r.DB.ExecContext(ctx, "UPDATE orders SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) InsertBooking(ctx context.Context, booking *domain.Booking) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO bookings (customer_name, customer_email, customer_phone, booking_date, booking_time, party_size, special_requests, status)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''), $8)
		RETURNING id, created_at`,
		booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone, booking.BookingDate,
		booking.BookingTime, booking.PartySize, booking.SpecialRequests, booking.Status).
		Scan(&booking.ID, &booking.CreatedAt)
}

func (r *PostgresRepository) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, customer_name, customer_email, COALESCE(customer_phone, ''), booking_date, booking_time, party_size, COALESCE(special_requests, ''), status, created_at
		FROM bookings
		ORDER BY booking_date, booking_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(&booking.ID, &booking.CustomerName, &booking.CustomerEmail, &booking.CustomerPhone,
			&booking.BookingDate, &booking.BookingTime, &booking.PartySize,
			&booking.SpecialRequests, &booking.Status, &booking.CreatedAt); err != nil {
			continue
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func (r *PostgresRepository) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	result, err := r.DB.ExecContext(ctx, "UPDATE bookings SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			description TEXT,
			category TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			image_url TEXT,
			available BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			customer_name TEXT NOT NULL,
			customer_email TEXT NOT NULL,
			customer_phone TEXT,
			order_type TEXT NOT NULL,
			delivery_address TEXT,
			special_instructions TEXT,
			total_amount NUMERIC(10,2) NOT NULL,
			status TEXT DEFAULT 'pending',
			created_at TIMESTAMPTZ DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			order_id UUID REFERENCES orders(id),
			menu_item_id UUID REFERENCES menu_items(id),
			quantity INTEGER NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			created_at TIMESTAMPTZ DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			customer_name TEXT NOT NULL,
			customer_email TEXT NOT NULL,
			customer_phone TEXT,
			booking_date TEXT NOT NULL,
			booking_time TEXT NOT NULL,
			party_size INTEGER NOT NULL,
			special_requests TEXT,
			status TEXT DEFAULT 'pending',
			created_at TIMESTAMPTZ DEFAULT now()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
