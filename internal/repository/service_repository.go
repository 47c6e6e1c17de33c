package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sabbebasta/booking-platform/internal/domain"
)

// ServiceRepository encapsulates catalog persistence.
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) error
	Update(ctx context.Context, service *domain.Service) error
	// GetByID returns a service regardless of its active flag.
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	// ListActive returns active services, most-recently-created first.
	ListActive(ctx context.Context) ([]domain.Service, error)
	// Deactivate soft-deletes the service.
	Deactivate(ctx context.Context, id string) error
}

type serviceRepository struct {
	pool *pgxpool.Pool
}

// NewServiceRepository instantiates the repository.
func NewServiceRepository(pool *pgxpool.Pool) ServiceRepository {
	return &serviceRepository{pool: pool}
}

const serviceColumns = `id, title, description, price, duration, rating, image_url, service_type, latitude, longitude, address, is_active, created_at, updated_at`

func (r *serviceRepository) Create(ctx context.Context, service *domain.Service) error {
	const query = `
        INSERT INTO services (title, description, price, duration, rating, image_url, service_type, latitude, longitude, address, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		service.Title,
		service.Description,
		service.Price,
		service.Duration,
		service.Rating,
		service.ImageURL,
		service.ServiceType,
		service.Location.Latitude,
		service.Location.Longitude,
		service.Location.Address,
		service.IsActive,
	).Scan(&service.ID, &service.CreatedAt, &service.UpdatedAt)
}

func (r *serviceRepository) Update(ctx context.Context, service *domain.Service) error {
	const query = `
        UPDATE services
        SET title=$1, description=$2, price=$3, duration=$4, rating=$5, image_url=$6, service_type=$7,
            latitude=$8, longitude=$9, address=$10, is_active=$11, updated_at=NOW()
        WHERE id=$12`

	cmd, err := r.pool.Exec(ctx, query,
		service.Title,
		service.Description,
		service.Price,
		service.Duration,
		service.Rating,
		service.ImageURL,
		service.ServiceType,
		service.Location.Latitude,
		service.Location.Longitude,
		service.Location.Address,
		service.IsActive,
		service.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	const query = `SELECT ` + serviceColumns + ` FROM services WHERE id=$1`

	var service domain.Service
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&service.ID,
		&service.Title,
		&service.Description,
		&service.Price,
		&service.Duration,
		&service.Rating,
		&service.ImageURL,
		&service.ServiceType,
		&service.Location.Latitude,
		&service.Location.Longitude,
		&service.Location.Address,
		&service.IsActive,
		&service.CreatedAt,
		&service.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) ListActive(ctx context.Context) ([]domain.Service, error) {
	const query = `SELECT ` + serviceColumns + ` FROM services WHERE is_active=TRUE ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Service
	for rows.Next() {
		var service domain.Service
		if err := rows.Scan(
			&service.ID,
			&service.Title,
			&service.Description,
			&service.Price,
			&service.Duration,
			&service.Rating,
			&service.ImageURL,
			&service.ServiceType,
			&service.Location.Latitude,
			&service.Location.Longitude,
			&service.Location.Address,
			&service.IsActive,
			&service.CreatedAt,
			&service.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, service)
	}
	return result, rows.Err()
}

func (r *serviceRepository) Deactivate(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE services SET is_active=FALSE, updated_at=NOW() WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
