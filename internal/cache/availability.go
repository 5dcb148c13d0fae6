package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache curto dos slots resolvidos por (especialista, data). Qualquer escrita
// de agendamento invalida a chave; o TTL cobre escritas feitas por fora.
const slotsTTL = 2 * time.Minute

type AvailabilityCache struct {
	rdb *redis.Client
}

func NewAvailabilityCache(addr, password string) *AvailabilityCache {
	if addr == "" {
		return nil
	}

	return &AvailabilityCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func slotsKey(specialistID, date string) string {
	return fmt.Sprintf("slots:%s:%s", specialistID, date)
}

func (c *AvailabilityCache) GetSlots(ctx context.Context, specialistID, date string) ([]string, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotsKey(specialistID, date)).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) SetSlots(ctx context.Context, specialistID, date string, slots []string) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	// best effort: cache indisponível nunca derruba a resolução
	c.rdb.Set(ctx, slotsKey(specialistID, date), raw, slotsTTL)
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, specialistID, date string) {
	if c == nil {
		return
	}

	c.rdb.Del(ctx, slotsKey(specialistID, date))
}
