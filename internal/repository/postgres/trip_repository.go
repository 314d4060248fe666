package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/shopcrawl-service/internal/domain"
	"github.com/shopcrawl-service/internal/domain/repository"
	"github.com/shopcrawl-service/internal/pkg/errors"
)

type tripRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTripRepository(db *DB) repository.TripRepository {
	return &tripRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *tripRepository) Save(ctx context.Context, trip *domain.Trip) error {
	shopsJSON, err := json.Marshal(trip.Shops)
	if err != nil {
		r.logger.Error("Failed to marshal trip shops", zap.String("trip_id", trip.ID), zap.Error(err))
		return errors.ErrInternalServer
	}

	query := `
		INSERT INTO trips (id, name, shops, created_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := r.db.ExecContext(ctx, query, trip.ID, trip.Name, shopsJSON, trip.CreatedAt); err != nil {
		r.logger.Error("Failed to save trip", zap.String("trip_id", trip.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *tripRepository) List(ctx context.Context, limit int) ([]domain.Trip, error) {
	query := `
		SELECT id, name, shops, created_at
		FROM trips
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		r.logger.Error("Failed to list trips", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	trips := make([]domain.Trip, 0)
	for rows.Next() {
		trip, err := r.scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, *trip)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate trips", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return trips, nil
}

func (r *tripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `
		SELECT id, name, shops, created_at
		FROM trips
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)
	trip, err := r.scanTrip(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTripNotFound
	}
	if err != nil {
		return nil, err
	}
	return trip, nil
}

func (r *tripRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete trip", zap.String("trip_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.String("trip_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrTripNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *tripRepository) scanTrip(row rowScanner) (*domain.Trip, error) {
	var trip domain.Trip
	var shopsJSON []byte

	err := row.Scan(&trip.ID, &trip.Name, &shopsJSON, &trip.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		r.logger.Error("Failed to scan trip", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := json.Unmarshal(shopsJSON, &trip.Shops); err != nil {
		r.logger.Error("Failed to unmarshal trip shops", zap.String("trip_id", trip.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &trip, nil
}
