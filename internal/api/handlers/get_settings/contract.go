package get_settings

import (
	"context"

	settingsModels "github.com/m04kA/Salon-BookingService/internal/service/businesssettings/models"
)

type SettingsService interface {
	Get(ctx context.Context) *settingsModels.SettingsResponse
}

type Logger interface {
	Info(format string, v ...interface{})
}
