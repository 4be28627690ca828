package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Key ключ кэша: месяц доступности однозначно определяется этой четверкой
type Key struct {
	BarberID  int64
	ServiceID int64
	Year      int
	Month     time.Month
}

// String возвращает строковый ключ для singleflight-группы
func (k Key) String() string {
	return fmt.Sprintf("%d:%d:%d-%02d", k.BarberID, k.ServiceID, k.Year, int(k.Month))
}

// ComputeFunc расчет месяца при промахе кэша
type ComputeFunc func(ctx context.Context) (*domain.MonthAvailability, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics счетчики кэша (опционально)
type Metrics interface {
	IncCacheHit()
	IncCacheMiss()
	IncCacheCoalesced()
}

// Cache in-memory кэш рассчитанных месяцев доступности.
//
// Значения иммутабельны после публикации, поэтому раздаются без копирования
// и кроме карты ничего блокировать не нужно. Конкурентные запросы одного
// ключа склеиваются: singleflight гарантирует один расчет на ключ,
// остальные ждут его результата
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]*domain.MonthAvailability

	group   singleflight.Group
	metrics Metrics
	logger  Logger
}

// New создает кэш доступности; metrics может быть nil
func New(logger Logger, metrics Metrics) *Cache {
	return &Cache{
		entries: make(map[Key]*domain.MonthAvailability),
		metrics: metrics,
		logger:  logger,
	}
}

// Get возвращает закэшированный месяц, если он есть
func (c *Cache) Get(key Key) (*domain.MonthAvailability, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.entries[key]
	return value, ok
}

// Put кладет рассчитанный месяц в кэш
func (c *Cache) Put(key Key, value *domain.MonthAvailability) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value
}

// GetOrCompute возвращает месяц из кэша, при промахе считает его через compute.
// Конкурентные вызовы одного ключа во время расчета ждут общий результат,
// а не запускают дубли. Расчет идет на контексте, отвязанном от инициирующего
// запроса: отмена одного из склеенных запросов возвращает ошибку только ему,
// общий расчет доходит до конца и наполняет кэш для остальных
func (c *Cache) GetOrCompute(ctx context.Context, key Key, compute ComputeFunc) (*domain.MonthAvailability, error) {
	if value, ok := c.Get(key); ok {
		c.incHit()
		return value, nil
	}

	c.incMiss()

	computeCtx := context.WithoutCancel(ctx)

	ch := c.group.DoChan(key.String(), func() (interface{}, error) {
		// Повторная проверка: пока брали singleflight, ключ мог появиться
		if value, ok := c.Get(key); ok {
			return value, nil
		}

		result, err := compute(computeCtx)
		if err != nil {
			return nil, err
		}

		c.Put(key, result)
		return result, nil
	})

	select {
	case <-ctx.Done():
		// Отказавшийся ждать запрос получает свою ошибку, расчет продолжается
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			c.incCoalesced()
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.MonthAvailability), nil
	}
}

// Invalidate удаляет все записи, для которых predicate возвращает true
// Возвращает количество удаленных записей
func (c *Cache) Invalidate(predicate func(Key) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if predicate(key) {
			delete(c.entries, key)
			removed++
		}
	}

	if removed > 0 {
		c.logger.Info("availability cache: invalidated %d entries", removed)
	}

	return removed
}

// InvalidateBarber удаляет все записи барбера (все услуги и месяцы)
// Вызывается путями записи: создание и отмена меняют занятость барбера
func (c *Cache) InvalidateBarber(barberID int64) int {
	return c.Invalidate(func(key Key) bool {
		return key.BarberID == barberID
	})
}

// InvalidateAll очищает кэш целиком
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Key]*domain.MonthAvailability)
	c.logger.Info("availability cache: cleared")
}

// Len возвращает количество записей в кэше
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *Cache) incHit() {
	if c.metrics != nil {
		c.metrics.IncCacheHit()
	}
}

func (c *Cache) incMiss() {
	if c.metrics != nil {
		c.metrics.IncCacheMiss()
	}
}

func (c *Cache) incCoalesced() {
	if c.metrics != nil {
		c.metrics.IncCacheCoalesced()
	}
}
