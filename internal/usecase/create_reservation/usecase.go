package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	customerRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/customer"
	reservationRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/reservation"
	"github.com/m04kA/Salon-BookingService/internal/timezone"
)

// UseCase use case создания записи в салон
type UseCase struct {
	settings        SettingsProvider
	reservationRepo ReservationRepository
	blockedRepo     BlockedTimeRepository
	customerRepo    CustomerRepository
	couponRepo      CouponRepository
	catalog         ServiceCatalog
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settings SettingsProvider,
	reservations ReservationRepository,
	blocked BlockedTimeRepository,
	customers CustomerRepository,
	coupons CouponRepository,
	catalog ServiceCatalog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		settings:        settings,
		reservationRepo: reservations,
		blockedRepo:     blocked,
		customerRepo:    customers,
		couponRepo:      coupons,
		catalog:         catalog,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка занятости слота и вставка выполняются в сериализуемой транзакции;
// частичный уникальный индекс по start_at - последний рубеж против гонки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: phone=%s, date=%s, time=%s, services=%v",
		req.CustomerPhone, req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Настройки салона и таймзона
	settings := uc.settings.Get(ctx, false)
	norm := timezone.NewNormalizer(settings.Timezone, uc.logger)

	y, m, d := req.Date.Date()
	businessDate := time.Date(y, m, d, 0, 0, 0, 0, norm.Location())

	now := uc.timeProvider.Now()
	nowBusiness := norm.ToBusinessTime(now)

	// 3. Дата не в прошлом (по календарю салона)
	if businessDate.Before(norm.StartOfDay(now)) {
		uc.logger.Warn("CreateReservation: date %s is in the past", businessDate.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Рабочий день
	if !settings.IsWorkingDay(businessDate.Weekday()) {
		uc.logger.Warn("CreateReservation: %s is a day off", businessDate.Format(domain.DateFormat))
		return nil, ErrDayOff
	}

	// 5. Время попадает в сетку слотов
	if err := validateSlotOnGrid(req.StartTime, settings); err != nil {
		uc.logger.Warn("CreateReservation: slot validation failed: %v", err)
		return nil, err
	}

	// 6. Минимальный зазор для записей на сегодня
	sameDay := norm.IsSameBusinessDay(now, businessDate)
	if err := validateBookingTime(req.StartTime, nowBusiness, sameDay, settings.MinBookingGapMinutes); err != nil {
		uc.logger.Warn("CreateReservation: booking time validation failed: %v", err)
		return nil, err
	}

	// 7. Длительность: явный конец либо длительность слота из настроек
	durationMinutes := settings.SlotDurationMinutes
	if req.EndTime != nil {
		startMin, err := req.StartTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		endMin, err := req.EndTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		durationMinutes = endMin - startMin
	}

	// 8. Услуги каталога: имена и цена денормализуются в запись
	services, err := uc.catalog.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Warn("CreateReservation: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, ErrServiceNotFound
	}

	serviceNames := make([]string, 0, len(services))
	var totalPrice float64
	for _, svc := range services {
		if !svc.Active {
			uc.logger.Warn("CreateReservation: service id=%d is not active", svc.ID)
			return nil, fmt.Errorf("%w: service %d is not available", ErrServiceNotFound, svc.ID)
		}
		serviceNames = append(serviceNames, svc.Name)
		totalPrice += svc.Price
	}

	// 9. Блокировки: клиент не может записаться на закрытое время, админ - может
	if req.UserType != domain.UserTypeAdmin {
		blocks, err := uc.blockedRepo.GetForDate(ctx, businessDate, businessDate.Weekday())
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get blocked times: %v", err)
			return nil, fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
		}
		if isBlockedInterval(req.StartTime, durationMinutes, blocks) {
			uc.logger.Warn("CreateReservation: time %s is blocked", req.StartTime)
			return nil, ErrTimeBlocked
		}
	}

	// Абсолютный момент начала: стеночное время салона, хранится в UTC
	startMin, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	startAt := norm.ToStorageTime(time.Date(y, m, d, startMin/60, startMin%60, 0, 0, norm.Location()))

	var (
		result       *domain.Reservation
		customer     *domain.Customer
		visitCount   int
		issuedCoupon *domain.Coupon
	)

	// 10. Сериализуемая транзакция: проверка занятости, клиент, запись, купон
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 10.1. Активные записи дня с блокировкой строк (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetForRange(txCtx, norm.StartOfDay(businessDate), norm.EndOfDay(businessDate))
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 10.2. Проверяем пересечение интервалов (границы не считаются)
		for _, res := range reservations {
			if res.IsActive() && res.Overlaps(startAt, durationMinutes) {
				uc.logger.Warn("CreateReservation: slot %s overlaps reservation id=%d", req.StartTime, res.ID)
				return ErrSlotTaken
			}
		}

		// 10.3. Находим или создаем клиента по телефону
		customer, err = uc.customerRepo.GetByPhone(txCtx, strings.TrimSpace(req.CustomerPhone))
		if err != nil {
			if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
				uc.logger.Error("CreateReservation: failed to get customer: %v", err)
				return fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
			}
			customer, err = uc.customerRepo.Create(txCtx, strings.TrimSpace(req.CustomerName), strings.TrimSpace(req.CustomerPhone))
			if err != nil {
				uc.logger.Error("CreateReservation: failed to create customer: %v", err)
				return fmt.Errorf("%w: failed to create customer: %v", ErrInternal, err)
			}
			uc.logger.Info("CreateReservation: created customer id=%d", customer.ID)
		}

		// 10.4. Сохраняем запись
		reservation := &domain.Reservation{
			CustomerID:      customer.ID,
			BookingDate:     businessDate,
			StartTime:       req.StartTime,
			StartAt:         startAt,
			DurationMinutes: durationMinutes,
			Status:          domain.StatusConfirmed,
			ServiceIDs:      req.ServiceIDs,
			ServiceNames:    strings.Join(serviceNames, ", "),
			TotalPrice:      totalPrice,
			Notes:           req.Notes,
		}

		result, err = uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				// Уникальный индекс поймал гонку, которую не увидел FOR UPDATE
				uc.logger.Warn("CreateReservation: unique index rejected slot %s", req.StartTime)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 10.5. Увеличиваем счетчик визитов; каждый юбилейный визит дает купон
		visitCount, err = uc.customerRepo.IncrementVisitCount(txCtx, customer.ID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to increment visit count: %v", err)
			return fmt.Errorf("%w: failed to increment visit count: %v", ErrInternal, err)
		}

		if visitCount%domain.CouponVisitMilestone == 0 {
			issuedCoupon, err = uc.couponRepo.Create(txCtx, &domain.Coupon{
				CustomerID:      customer.ID,
				Code:            uuid.NewString(),
				DiscountPercent: domain.CouponDiscountPercent,
				MilestoneVisit:  visitCount,
			})
			if err != nil {
				uc.logger.Error("CreateReservation: failed to create coupon: %v", err)
				return fmt.Errorf("%w: failed to create coupon: %v", ErrInternal, err)
			}
			uc.logger.Info("CreateReservation: issued coupon for visit %d, customer id=%d", visitCount, customer.ID)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d, customer id=%d, visit=%d",
		result.ID, customer.ID, visitCount)

	resp := &Response{
		ID:              result.ID,
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceIDs:      result.ServiceIDs,
		ServiceNames:    result.ServiceNames,
		TotalPrice:      result.TotalPrice,
		Notes:           result.Notes,
		VisitCount:      visitCount,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}
	if issuedCoupon != nil {
		resp.Coupon = &IssuedCoupon{
			Code:            issuedCoupon.Code,
			DiscountPercent: issuedCoupon.DiscountPercent,
			MilestoneVisit:  issuedCoupon.MilestoneVisit,
		}
	}

	return resp, nil
}
