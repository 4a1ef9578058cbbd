package blockedtimes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	blockedRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/blockedtime"
	"github.com/m04kA/Salon-BookingService/internal/service/blockedtimes/models"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Service сервис для работы с блокировками времени (админка)
type Service struct {
	blockedRepo BlockedTimeRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blocked BlockedTimeRepository, logger Logger) *Service {
	return &Service{
		blockedRepo: blocked,
		logger:      logger,
	}
}

// Create блокирует интервал или весь день
// Интервал задается обоими границами сразу; одна граница без другой - ошибка
func (s *Service) Create(ctx context.Context, req *models.CreateBlockedTimeRequest) (*models.BlockedTimeResponse, error) {
	s.logger.Info("CreateBlockedTime: date=%s, recurring=%v", req.BlockDate, req.IsRecurring)

	block, err := s.buildBlock(req)
	if err != nil {
		s.logger.Warn("CreateBlockedTime: validation failed: %v", err)
		return nil, err
	}

	created, err := s.blockedRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("CreateBlockedTime: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedTime: created id=%d", created.ID)
	return models.FromDomainBlockedTime(created), nil
}

// List возвращает блокировки начиная с указанной даты (пустая дата - с сегодня)
func (s *Service) List(ctx context.Context, from time.Time) (*models.BlockedTimeListResponse, error) {
	blocks, err := s.blockedRepo.List(ctx, from)
	if err != nil {
		s.logger.Error("ListBlockedTimes: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedTimeList(blocks), nil
}

// Delete снимает блокировку
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBlockedTime: id=%d", id)

	if err := s.blockedRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedTimeNotFound) {
			s.logger.Warn("DeleteBlockedTime: id=%d not found", id)
			return ErrBlockedTimeNotFound
		}
		s.logger.Error("DeleteBlockedTime: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) buildBlock(req *models.CreateBlockedTimeRequest) (*domain.BlockedTime, error) {
	date, err := time.Parse(domain.DateFormat, req.BlockDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid blockDate %q", ErrInvalidInput, req.BlockDate)
	}

	if (req.StartTime == nil) != (req.EndTime == nil) {
		return nil, fmt.Errorf("%w: startTime and endTime must be set together", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	block := &domain.BlockedTime{
		BlockDate:   date,
		Reason:      req.Reason,
		IsRecurring: req.IsRecurring,
	}

	if req.StartTime != nil {
		start, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
		end, err := types.NewTimeStringFromString(*req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
		}
		if !start.IsBefore(end) {
			return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
		}
		block.StartTime = &start
		block.EndTime = &end
	}

	return block, nil
}
