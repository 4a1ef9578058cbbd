package businesssettings

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// SettingsStore интерфейс хранилища настроек
type SettingsStore interface {
	Upsert(ctx context.Context, values map[string]string) error
}

// SettingsCache интерфейс кэша настроек
type SettingsCache interface {
	Get(ctx context.Context, forceRefresh bool) *domain.BusinessSettings
	Invalidate()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
