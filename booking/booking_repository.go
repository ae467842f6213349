package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

// GetClubBookings loads the full non-cancelled booking snapshot for a club.
// Used for the initial load and for every resync after a channel reconnect.
func (r *Repository) GetClubBookings(ctx context.Context, clubID string) ([]Booking, error) {
	sql := `SELECT id, court_id, club_id, start_time, end_time, status, updated_at
            FROM court_booking.booking
            WHERE club_id = $1 AND status <> 'cancelled';
        `

	rows, err := r.conn.Query(ctx, sql, clubID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for club '%v': %w", clubID, err)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		var booking Booking
		err := rows.Scan(
			&booking.ID,
			&booking.CourtID,
			&booking.ClubID,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.UpdatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `
			SELECT id, court_id, club_id, start_time, end_time, status, updated_at
			FROM court_booking.booking
			WHERE id=$1;
		`

	var booking Booking
	err := r.conn.QueryRow(ctx, sql, id).Scan(
		&booking.ID,
		&booking.CourtID,
		&booking.ClubID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return booking, nil
}

func (r *Repository) GetCourtBookings(ctx context.Context, courtID string) ([]Booking, error) {
	sql := `
            SELECT id, court_id, club_id, start_time, end_time, status, updated_at
            FROM court_booking.booking
            WHERE court_id = $1 AND status <> 'cancelled';
        `

	rows, err := r.conn.Query(ctx, sql, courtID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for court '%v': %w", courtID, err)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		var booking Booking
		err := rows.Scan(
			&booking.ID,
			&booking.CourtID,
			&booking.ClubID,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.UpdatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan bookings for court '%v': %w", courtID, err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}
