package review

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения unique constraint
const pgUniqueViolation = "23505"

var reviewColumns = []string{
	"id",
	"center_id",
	"reservation_id",
	"user_id",
	"rating",
	"comment",
	"created_at",
}

// Repository репозиторий для работы с отзывами (коллекция comments)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отзыв
// Уникальность по reservation_id дополнительно гарантируется
// constraint'ом в БД - дубликат возвращает ErrDuplicateReview
func (r *Repository) Create(ctx context.Context, rev *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("comments").
		Columns(
			"center_id",
			"reservation_id",
			"user_id",
			"rating",
			"comment",
		).
		Values(
			rev.CenterID,
			rev.ReservationID,
			rev.UserID,
			rev.Rating,
			rev.Comment,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rev.ID,
		&createdAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rev.CreatedAt = createdAt.Time

	return rev, nil
}

// GetByReservationID получает отзыв по ID бронирования
// Отзывов на бронирование не больше одного
func (r *Repository) GetByReservationID(ctx context.Context, reservationID int64) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("comments").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	rev, err := scanReview(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - scan review: %v", ErrScanRow, err)
	}

	return rev, nil
}

// GetByCenterID получает все отзывы центра, сначала новые
func (r *Repository) GetByCenterID(ctx context.Context, centerID int64) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("comments").
		Where(squirrel.Eq{"center_id": centerID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCenterID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCenterID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReviews(rows)
}

// GetAll получает все отзывы системы
// Используется пакетным пересчетом рейтингов
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("comments").
		OrderBy("center_id ASC, created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReviews(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var rev domain.Review
	var createdAt sql.NullTime

	err := row.Scan(
		&rev.ID,
		&rev.CenterID,
		&rev.ReservationID,
		&rev.UserID,
		&rev.Rating,
		&rev.Comment,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	rev.CreatedAt = createdAt.Time

	return &rev, nil
}

func scanReviews(rows *sql.Rows) ([]*domain.Review, error) {
	reviews := make([]*domain.Review, 0)

	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReviews - scan row: %v", ErrScanRow, err)
		}
		reviews = append(reviews, rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReviews - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}
