package settings

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// DefaultCacheTTL время жизни закэшированных настроек
const DefaultCacheTTL = 5 * time.Minute

// Store интерфейс хранилища настроек (key/value)
type Store interface {
	GetAll(ctx context.Context) (map[string]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Clock интерфейс для получения текущего времени (для тестирования)
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Cache кэш бизнес-настроек с TTL перед хранилищем
// Единственное разделяемое мутабельное состояние процесса; значение заменяется
// целиком (никогда не мутируется по полям), поэтому безопасно для конкурентных читателей
//
// Протокол записи для изменяющих настройки: Invalidate(), затем Get(ctx, true) -
// это гарантирует, что следующий читатель увидит новое значение
type Cache struct {
	store  Store
	logger Logger
	ttl    time.Duration
	clock  Clock

	mu       sync.Mutex
	value    *domain.BusinessSettings
	loadedAt time.Time
}

// NewCache создает кэш настроек
// ttl <= 0 заменяется на DefaultCacheTTL
func NewCache(store Store, ttl time.Duration, logger Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		store:  store,
		logger: logger,
		ttl:    ttl,
		clock:  realClock{},
	}
}

// Get возвращает текущие настройки
// Перечитывает хранилище, если forceRefresh, значения ещё нет или TTL истек; иначе отдает кэшированное значение
// Ошибка чтения хранилища не пробрасывается: возвращаются настройки по умолчанию
// (расчёт доступности не должен падать из-за недоступности хранилища настроек),
// при этом fallback не кэшируется - следующий вызов снова попробует хранилище
func (c *Cache) Get(ctx context.Context, forceRefresh bool) *domain.BusinessSettings {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if !forceRefresh && c.value != nil && now.Sub(c.loadedAt) <= c.ttl {
		return c.value
	}

	values, err := c.store.GetAll(ctx)
	if err != nil {
		c.logger.Warn("settings cache: store read failed, using defaults: %v", err)
		return Defaults()
	}

	c.value = FromStoredValues(values)
	c.loadedAt = now
	return c.value
}

// Invalidate сбрасывает кэшированное значение без перечитывания
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = nil
	c.loadedAt = time.Time{}
}
