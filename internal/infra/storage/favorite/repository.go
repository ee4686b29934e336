package favorite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с избранными центрами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория избранного
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Add добавляет центр в избранное пользователя
// Операция идемпотентна: повторное добавление не является ошибкой
func (r *Repository) Add(ctx context.Context, fav *domain.Favorite) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("favorites").
		Columns("user_id", "center_id").
		Values(fav.UserID, fav.CenterID).
		Suffix("ON CONFLICT (user_id, center_id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Add - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Remove убирает центр из избранного пользователя
func (r *Repository) Remove(ctx context.Context, userID string, centerID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("favorites").
		Where(squirrel.Eq{"user_id": userID, "center_id": centerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Remove - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

// Exists проверяет наличие центра в избранном пользователя
func (r *Repository) Exists(ctx context.Context, userID string, centerID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("favorites").
		Where(squirrel.Eq{"user_id": userID, "center_id": centerID}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetCenterIDsByUser получает ID всех избранных центров пользователя
func (r *Repository) GetCenterIDsByUser(ctx context.Context, userID string) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("center_id").
		From("favorites").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCenterIDsByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCenterIDsByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	centerIDs := make([]int64, 0)
	for rows.Next() {
		var centerID int64
		if err := rows.Scan(&centerID); err != nil {
			return nil, fmt.Errorf("%w: GetCenterIDsByUser - scan center_id: %v", ErrScanRow, err)
		}
		centerIDs = append(centerIDs, centerID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCenterIDsByUser - rows error: %v", ErrScanRow, err)
	}

	return centerIDs, nil
}
