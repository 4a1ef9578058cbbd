package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"name",
	"price",
	"duration_minutes",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с каталогом услуг салона
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет новую услугу в каталог
func (r *Repository) Create(ctx context.Context, service *domain.SalonService) (*domain.SalonService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("name", "price", "duration_minutes", "active").
		Values(service.Name, service.Price, service.DurationMinutes, service.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&service.ID, &service.CreatedAt, &service.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - exec query: %v", ErrExecQuery, err)
	}

	return service, nil
}

// GetByID возвращает услугу по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SalonService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build query: %v", ErrBuildQuery, err)
	}

	service, err := r.scanService(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: GetByID - service %d", ErrServiceNotFound, id)
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return service, nil
}

// GetByIDs возвращает услуги по списку идентификаторов.
// Если хотя бы один идентификатор не найден, возвращает ErrServiceNotFound.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.SalonService, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - exec query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services, err := r.scanServices(rows)
	if err != nil {
		return nil, err
	}

	if len(services) != len(uniqueIDs(ids)) {
		return nil, fmt.Errorf("%w: GetByIDs - requested %v", ErrServiceNotFound, ids)
	}

	return services, nil
}

// List возвращает услуги каталога. При activeOnly=true скрытые услуги отфильтровываются.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.SalonService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("id ASC")

	if activeOnly {
		builder = builder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - exec query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

// Update обновляет услугу каталога
func (r *Repository) Update(ctx context.Context, service *domain.SalonService) (*domain.SalonService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("name", service.Name).
		Set("price", service.Price).
		Set("duration_minutes", service.DurationMinutes).
		Set("active", service.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": service.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&service.CreatedAt, &service.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: Update - service %d", ErrServiceNotFound, service.ID)
		}
		return nil, fmt.Errorf("%w: Update - exec query: %v", ErrExecQuery, err)
	}

	return service, nil
}

// Delete удаляет услугу из каталога
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - exec query: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: Delete - service %d", ErrServiceNotFound, id)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanService(row rowScanner) (*domain.SalonService, error) {
	var service domain.SalonService

	err := row.Scan(
		&service.ID,
		&service.Name,
		&service.Price,
		&service.DurationMinutes,
		&service.Active,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &service, nil
}

func (r *Repository) scanServices(rows *sql.Rows) ([]*domain.SalonService, error) {
	var services []*domain.SalonService
	for rows.Next() {
		service, err := r.scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows iteration: %v", ErrExecQuery, err)
	}

	return services, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
