package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrilife/booking-api/internal/domain"
)

// PostgresStore is the opt-in durable backend. Endpoint semantics are
// identical to MemoryStore; insertion order is preserved by a serial column.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// InitSchema creates the bookings table if it does not exist yet.
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS bookings (
			seq        BIGSERIAL PRIMARY KEY,
			booking_id TEXT NOT NULL UNIQUE,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			phone      TEXT NOT NULL,
			date       TEXT NOT NULL,
			package    TEXT NOT NULL,
			message    TEXT NOT NULL DEFAULT '',
			status     TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create bookings table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, booking *domain.Booking) error {
	_, err := s.db.Exec(ctx, `INSERT INTO bookings (booking_id, name, email, phone, date, package, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		booking.BookingID, booking.Name, booking.Email, booking.Phone, booking.Date,
		string(booking.Package), booking.Message, booking.Status, booking.Timestamp)
	return err
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := s.db.QueryRow(ctx, `SELECT booking_id, name, email, phone, date, package, message, status, created_at
		FROM bookings WHERE booking_id=$1`, id)
	return scanBooking(row)
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]domain.Booking, error) {
	rows, err := s.db.Query(ctx, `SELECT booking_id, name, email, phone, date, package, message, status, created_at
		FROM bookings ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, id, status string) (*domain.Booking, error) {
	if status == "" {
		return s.FindByID(ctx, id)
	}
	row := s.db.QueryRow(ctx, `UPDATE bookings SET status=$1 WHERE booking_id=$2
		RETURNING booking_id, name, email, phone, date, package, message, status, created_at`, status, id)
	return scanBooking(row)
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	var pkg string
	err := row.Scan(&b.BookingID, &b.Name, &b.Email, &b.Phone, &b.Date, &pkg, &b.Message, &b.Status, &b.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	b.Package = domain.Package(pkg)
	return &b, nil
}

var _ Store = (*PostgresStore)(nil)
