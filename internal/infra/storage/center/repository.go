package center

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

var centerColumns = []string{
	"id",
	"name",
	"category",
	"address",
	"capacity",
	"rating",
	"review_count",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с центрами
// Центры заводятся административно (seed), сервис их только читает
// и обновляет агрегированный рейтинг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория центров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает все центры, отсортированные по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Center, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(centerColumns...).
		From("centers").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	centers := make([]*domain.Center, 0)

	for rows.Next() {
		c, err := scanCenter(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		centers = append(centers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return centers, nil
}

// GetByID получает центр по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Center, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(centerColumns...).
		From("centers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCenter(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCenterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan center: %v", ErrScanRow, err)
	}

	return c, nil
}

// UpdateRating обновляет производные поля рейтинга центра
// Вызывается агрегатором после создания отзыва и при пересчете
func (r *Repository) UpdateRating(ctx context.Context, id int64, rating float64, reviewCount int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("centers").
		Set("rating", rating).
		Set("review_count", reviewCount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRating - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRating - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRating - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCenterNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCenter(row rowScanner) (*domain.Center, error) {
	var c domain.Center
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Category,
		&c.Address,
		&c.Capacity,
		&c.Rating,
		&c.ReviewCount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
