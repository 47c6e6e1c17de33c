package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sabbebasta/booking-platform/internal/domain"
)

// BookingRepository encapsulates booking persistence. Reads populate owner,
// service and assigned-staff references through LEFT JOINs, so a dangling
// reference yields a nil pointer instead of an error.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	Update(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// List returns bookings most-recent-first. A non-nil ownerID restricts
	// the result to that owner's bookings.
	List(ctx context.Context, ownerID *string) ([]domain.Booking, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository instantiates the repository.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingSelect = `
        SELECT b.id, b.user_id, b.service_id, b.booking_date, b.status, b.total_amount, b.payment_status,
               b.notes, b.custom_latitude, b.custom_longitude, b.custom_address, b.deceased_name,
               b.relationship, b.assigned_staff_id, b.created_at, b.updated_at,
               u.id, u.first_name, u.last_name, u.email, u.phone,
               s.id, s.title, s.price, s.duration, s.image_url,
               st.id, st.first_name, st.last_name, st.email, st.phone
        FROM bookings b
        LEFT JOIN users u ON u.id = b.user_id
        LEFT JOIN services s ON s.id = b.service_id
        LEFT JOIN staff_members st ON st.id = b.assigned_staff_id`

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	const query = `
        INSERT INTO bookings (user_id, service_id, booking_date, status, total_amount, payment_status,
                              notes, custom_latitude, custom_longitude, custom_address, deceased_name,
                              relationship, assigned_staff_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, created_at, updated_at`

	var lat, lng *float64
	var addr *string
	if booking.CustomLocation != nil {
		lat = &booking.CustomLocation.Latitude
		lng = &booking.CustomLocation.Longitude
		addr = &booking.CustomLocation.Address
	}

	return r.pool.QueryRow(ctx, query,
		booking.UserID,
		booking.ServiceID,
		booking.BookingDate,
		booking.Status,
		booking.TotalAmount,
		booking.PaymentStatus,
		booking.Notes,
		lat,
		lng,
		addr,
		booking.DeceasedName,
		booking.Relationship,
		booking.AssignedStaffID,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *bookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	const query = `
        UPDATE bookings
        SET status=$1, payment_status=$2, assigned_staff_id=$3, notes=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		booking.Status,
		booking.PaymentStatus,
		booking.AssignedStaffID,
		booking.Notes,
		booking.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	rows, err := r.pool.Query(ctx, bookingSelect+` WHERE b.id=$1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, pgx.ErrNoRows
	}
	booking, err := scanBooking(rows)
	if err != nil {
		return nil, err
	}
	return booking, rows.Err()
}

func (r *bookingRepository) List(ctx context.Context, ownerID *string) ([]domain.Booking, error) {
	query := bookingSelect
	args := []any{}
	if ownerID != nil {
		args = append(args, *ownerID)
		query += ` WHERE b.user_id=$1`
	}
	query += ` ORDER BY b.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *booking)
	}
	return result, rows.Err()
}

func scanBooking(rows pgx.Rows) (*domain.Booking, error) {
	var (
		booking domain.Booking

		customLat, customLng *float64
		customAddr           *string

		ownerID, ownerFirst, ownerLast, ownerEmail, ownerPhone *string
		svcID, svcTitle, svcDuration, svcImageURL              *string
		svcPrice                                               *float64
		staffID, staffFirst, staffLast, staffEmail, staffPhone *string
	)

	if err := rows.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ServiceID,
		&booking.BookingDate,
		&booking.Status,
		&booking.TotalAmount,
		&booking.PaymentStatus,
		&booking.Notes,
		&customLat,
		&customLng,
		&customAddr,
		&booking.DeceasedName,
		&booking.Relationship,
		&booking.AssignedStaffID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&ownerID, &ownerFirst, &ownerLast, &ownerEmail, &ownerPhone,
		&svcID, &svcTitle, &svcPrice, &svcDuration, &svcImageURL,
		&staffID, &staffFirst, &staffLast, &staffEmail, &staffPhone,
	); err != nil {
		return nil, err
	}

	if customLat != nil && customLng != nil {
		loc := domain.Location{Latitude: *customLat, Longitude: *customLng}
		if customAddr != nil {
			loc.Address = *customAddr
		}
		booking.CustomLocation = &loc
	}
	if ownerID != nil {
		booking.Owner = &domain.User{
			ID:        *ownerID,
			FirstName: deref(ownerFirst),
			LastName:  deref(ownerLast),
			Email:     deref(ownerEmail),
			Phone:     deref(ownerPhone),
		}
	}
	if svcID != nil {
		svc := &domain.Service{
			ID:       *svcID,
			Title:    deref(svcTitle),
			Duration: deref(svcDuration),
			ImageURL: deref(svcImageURL),
		}
		if svcPrice != nil {
			svc.Price = *svcPrice
		}
		booking.Service = svc
	}
	if staffID != nil {
		booking.AssignedStaff = &domain.StaffMember{
			ID:        *staffID,
			FirstName: deref(staffFirst),
			LastName:  deref(staffLast),
			Email:     deref(staffEmail),
			Phone:     deref(staffPhone),
		}
	}
	return &booking, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
