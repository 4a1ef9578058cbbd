package blockedtimes

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	blockedRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/blockedtime"
	"github.com/m04kA/Salon-BookingService/internal/service/blockedtimes/models"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

type fakeBlockedRepo struct {
	created   *domain.BlockedTime
	deleted   []int64
	notFound  bool
	listAfter time.Time
}

func (f *fakeBlockedRepo) Create(ctx context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error) {
	created := *block
	created.ID = 5
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

func (f *fakeBlockedRepo) List(ctx context.Context, from time.Time) ([]*domain.BlockedTime, error) {
	f.listAfter = from
	return nil, nil
}

func (f *fakeBlockedRepo) Delete(ctx context.Context, id int64) error {
	if f.notFound {
		return blockedRepo.ErrBlockedTimeNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

func TestCreate_IntervalBlock(t *testing.T) {
	repo := &fakeBlockedRepo{}
	svc := NewService(repo, testLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateBlockedTimeRequest{
		BlockDate: "2025-06-16",
		StartTime: ptr.Ptr("14:00"),
		EndTime:   ptr.Ptr("16:00"),
		Reason:    ptr.Ptr("мастер на обучении"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, "14:00", *resp.StartTime)
	require.NotNil(t, resp.EndTime)
	assert.Equal(t, "16:00", *resp.EndTime)
	require.NotNil(t, repo.created.StartTime)
	assert.Equal(t, "14:00", repo.created.StartTime.String())
	assert.False(t, repo.created.IsWholeDay())
}

func TestCreate_WholeDayBlock(t *testing.T) {
	repo := &fakeBlockedRepo{}
	svc := NewService(repo, testLogger{})

	_, err := svc.Create(context.Background(), &models.CreateBlockedTimeRequest{
		BlockDate:   "2025-06-16",
		IsRecurring: true,
	})
	require.NoError(t, err)

	assert.True(t, repo.created.IsWholeDay())
	assert.True(t, repo.created.IsRecurring)
}

func TestCreate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateBlockedTimeRequest
	}{
		{
			name: "bad date",
			req:  models.CreateBlockedTimeRequest{BlockDate: "16.06.2025"},
		},
		{
			name: "start without end",
			req: models.CreateBlockedTimeRequest{
				BlockDate: "2025-06-16",
				StartTime: ptr.Ptr("14:00"),
			},
		},
		{
			name: "end without start",
			req: models.CreateBlockedTimeRequest{
				BlockDate: "2025-06-16",
				EndTime:   ptr.Ptr("16:00"),
			},
		},
		{
			name: "start not before end",
			req: models.CreateBlockedTimeRequest{
				BlockDate: "2025-06-16",
				StartTime: ptr.Ptr("16:00"),
				EndTime:   ptr.Ptr("14:00"),
			},
		},
		{
			name: "bad start time",
			req: models.CreateBlockedTimeRequest{
				BlockDate: "2025-06-16",
				StartTime: ptr.Ptr("25:00"),
				EndTime:   ptr.Ptr("26:00"),
			},
		},
		{
			name: "reason too long",
			req: models.CreateBlockedTimeRequest{
				BlockDate: "2025-06-16",
				Reason:    ptr.Ptr(strings.Repeat("a", domain.MaxReasonLength+1)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeBlockedRepo{}, testLogger{})

			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDelete(t *testing.T) {
	repo := &fakeBlockedRepo{}
	svc := NewService(repo, testLogger{})

	require.NoError(t, svc.Delete(context.Background(), 5))
	assert.Equal(t, []int64{5}, repo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(&fakeBlockedRepo{notFound: true}, testLogger{})

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBlockedTimeNotFound)
}
