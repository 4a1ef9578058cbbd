package coupon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
)

var couponColumns = []string{
	"id",
	"customer_id",
	"code",
	"discount_percent",
	"milestone_visit",
	"issued_at",
	"used_at",
}

// Repository репозиторий для работы со скидочными купонами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория купонов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый купон
func (r *Repository) Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("coupons").
		Columns("customer_id", "code", "discount_percent", "milestone_visit").
		Values(coupon.CustomerID, coupon.Code, coupon.DiscountPercent, coupon.MilestoneVisit).
		Suffix("RETURNING id, issued_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&coupon.ID, &coupon.IssuedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - exec query: %v", ErrExecQuery, err)
	}

	return coupon, nil
}

// GetByCustomerID возвращает все купоны клиента, свежие первыми
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(couponColumns...).
		From("coupons").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("issued_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - exec query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var coupons []*domain.Coupon
	for rows.Next() {
		var coupon domain.Coupon
		var usedAt sql.NullTime

		err := rows.Scan(
			&coupon.ID,
			&coupon.CustomerID,
			&coupon.Code,
			&coupon.DiscountPercent,
			&coupon.MilestoneVisit,
			&coupon.IssuedAt,
			&usedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCustomerID - scan row: %v", ErrScanRow, err)
		}

		if usedAt.Valid {
			coupon.UsedAt = &usedAt.Time
		}
		coupons = append(coupons, &coupon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - rows iteration: %v", ErrExecQuery, err)
	}

	return coupons, nil
}
