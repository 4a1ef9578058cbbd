package get_availability

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	getAvailability "github.com/m04kA/Salon-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date           string   `json:"date"`
	DayOff         bool     `json:"dayOff"`
	TotalSlots     int      `json:"totalSlots"`
	AllSlots       []string `json:"allSlots"`
	AvailableSlots []string `json:"availableSlots"`
	BookedSlots    []string `json:"bookedSlots"`
	BlockedSlots   []string `json:"blockedSlots"`

	Timezone            string `json:"timezone"`
	OpenTime            string `json:"openTime"`
	CloseTime           string `json:"closeTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string, userType domain.UserType) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		Date:     date,
		UserType: userType,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Date:                resp.Date.Format(domain.DateFormat),
		DayOff:              resp.DayOff,
		TotalSlots:          len(resp.AllSlots),
		AllSlots:            make([]string, 0, len(resp.AllSlots)),
		AvailableSlots:      make([]string, 0, len(resp.Available)),
		BookedSlots:         make([]string, 0, len(resp.Booked)),
		BlockedSlots:        make([]string, 0, len(resp.Blocked)),
		Timezone:            resp.Timezone,
		OpenTime:            resp.OpenTime.String(),
		CloseTime:           resp.CloseTime.String(),
		SlotDurationMinutes: resp.SlotDurationMinutes,
	}

	for _, s := range resp.AllSlots {
		out.AllSlots = append(out.AllSlots, s.String())
	}
	for _, s := range resp.Available {
		out.AvailableSlots = append(out.AvailableSlots, s.String())
	}
	for _, s := range resp.Booked {
		out.BookedSlots = append(out.BookedSlots, s.String())
	}
	for _, s := range resp.Blocked {
		out.BlockedSlots = append(out.BlockedSlots, s.String())
	}

	return out
}
