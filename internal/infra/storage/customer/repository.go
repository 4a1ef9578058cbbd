package customer

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

var customerColumns = []string{
	"id",
	"name",
	"phone",
	"visit_count",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с клиентами салона
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового клиента с нулевым счетчиком визитов
func (r *Repository) Create(ctx context.Context, name, phone string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("name", "phone", "visit_count").
		Values(name, phone, 0).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build query: %v", ErrBuildQuery, err)
	}

	customer := &domain.Customer{
		Name:  name,
		Phone: phone,
	}

	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - exec query: %v", ErrExecQuery, err)
	}

	return customer, nil
}

// GetByID возвращает клиента по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build query: %v", ErrBuildQuery, err)
	}

	customer, err := r.scanCustomer(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: GetByID - customer %d", ErrCustomerNotFound, id)
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return customer, nil
}

// GetByPhone возвращает клиента по номеру телефона
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"phone": phone}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build query: %v", ErrBuildQuery, err)
	}

	customer, err := r.scanCustomer(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: GetByPhone - phone %s", ErrCustomerNotFound, phone)
		}
		return nil, fmt.Errorf("%w: GetByPhone - scan row: %v", ErrScanRow, err)
	}

	return customer, nil
}

// IncrementVisitCount увеличивает счетчик визитов клиента и возвращает новое значение
func (r *Repository) IncrementVisitCount(ctx context.Context, id int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("visit_count", squirrel.Expr("visit_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING visit_count").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: IncrementVisitCount - build query: %v", ErrBuildQuery, err)
	}

	var visitCount int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&visitCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: IncrementVisitCount - customer %d", ErrCustomerNotFound, id)
		}
		return 0, fmt.Errorf("%w: IncrementVisitCount - exec query: %v", ErrExecQuery, err)
	}

	return visitCount, nil
}

// List возвращает всех клиентов, отсортированных по числу визитов
func (r *Repository) List(ctx context.Context) ([]*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		OrderBy("visit_count DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - exec query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		customer, err := r.scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrExecQuery, err)
	}

	return customers, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanCustomer(row rowScanner) (*domain.Customer, error) {
	var customer domain.Customer

	err := row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Phone,
		&customer.VisitCount,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &customer, nil
}
