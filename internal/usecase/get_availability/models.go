package get_availability

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Request модель запроса доступности на день
type Request struct {
	Date     time.Time       // Дата, на которую запрашиваются слоты (без времени)
	UserType domain.UserType // Роль вызывающего: админ видит слоты под блокировками
}

// Response модель ответа с разбиением дневной сетки слотов
// Available, Booked и Blocked попарно не пересекаются; занятый слот
// имеет приоритет над заблокированным
type Response struct {
	Date      time.Time
	DayOff    bool // Салон не работает в этот день недели
	AllSlots  []types.TimeString // Полная дневная сетка (без обеденных слотов)
	Available []types.TimeString
	Booked    []types.TimeString
	Blocked   []types.TimeString

	// Эхо настроек, использованных при расчете
	Timezone            string
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
}
