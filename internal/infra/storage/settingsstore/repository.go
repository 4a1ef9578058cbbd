package settingsstore

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с настройками салона (key/value)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll возвращает все сохранённые настройки в виде map ключ -> значение.
// Отсутствующие ключи не являются ошибкой: слой настроек подставит дефолты.
func (r *Repository) GetAll(ctx context.Context) (map[string]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("key", "value").
		From("business_settings").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - exec query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		values[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows iteration: %v", ErrExecQuery, err)
	}

	return values, nil
}

// Upsert сохраняет набор настроек, перезаписывая существующие ключи
func (r *Repository) Upsert(ctx context.Context, values map[string]string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for key, value := range values {
		query, args, err := psqlbuilder.Insert("business_settings").
			Columns("key", "value", "updated_at").
			Values(key, value, squirrel.Expr("NOW()")).
			Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Upsert - build query for key %q: %v", ErrBuildQuery, key, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Upsert - exec query for key %q: %v", ErrExecQuery, key, err)
		}
	}

	return nil
}
