package blockedtime

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

var blockedTimeColumns = []string{
	"id",
	"block_date",
	"start_time",
	"end_time",
	"reason",
	"is_recurring",
	"created_at",
}

// Repository репозиторий для работы с блокировками времени
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку времени
func (r *Repository) Create(ctx context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_times").
		Columns(
			"block_date",
			"start_time",
			"end_time",
			"reason",
			"is_recurring",
		).
		Values(
			block.BlockDate,
			block.StartTime,
			block.EndTime,
			block.Reason,
			block.IsRecurring,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	return block, nil
}

// GetForDate получает блокировки, действующие на указанную дату:
// разовые блокировки этой даты и еженедельные с совпадающим днём недели
// weekday передается отдельно, потому что день недели считается в таймзоне салона, а не БД
func (r *Repository) GetForDate(ctx context.Context, date time.Time, weekday time.Weekday) ([]*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedTimeColumns...).
		From("blocked_times").
		Where(squirrel.Or{
			squirrel.Eq{"block_date": date},
			squirrel.And{
				squirrel.Eq{"is_recurring": true},
				squirrel.Expr("EXTRACT(DOW FROM block_date) = ?", int(weekday)),
			},
		}).
		OrderBy("start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlockedTimes(rows)
}

// List получает все блокировки начиная с указанной даты (включая еженедельные)
func (r *Repository) List(ctx context.Context, from time.Time) ([]*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedTimeColumns...).
		From("blocked_times").
		Where(squirrel.Or{
			squirrel.GtOrEq{"block_date": from},
			squirrel.Eq{"is_recurring": true},
		}).
		OrderBy("block_date ASC, start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlockedTimes(rows)
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_times").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedTimeNotFound
	}

	return nil
}

func (r *Repository) scanBlockedTimes(rows *sql.Rows) ([]*domain.BlockedTime, error) {
	blocks := make([]*domain.BlockedTime, 0)

	for rows.Next() {
		var block domain.BlockedTime
		var startTime, endTime types.TimeString
		var createdAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.BlockDate,
			&startTime,
			&endTime,
			&block.Reason,
			&block.IsRecurring,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBlockedTimes - scan row: %v", ErrScanRow, err)
		}

		// NULL-колонки приходят пустыми значениями
		if !startTime.IsZero() {
			block.StartTime = &startTime
		}
		if !endTime.IsZero() {
			block.EndTime = &endTime
		}

		block.CreatedAt = createdAt.Time
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlockedTimes - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
