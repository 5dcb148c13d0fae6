package booking

import (
	"context"
	"time"

	"github.com/lumispa/salon-api/internal/cache"
	domain "github.com/lumispa/salon-api/internal/domain/booking"
	"github.com/lumispa/salon-api/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	slots *cache.AvailabilityCache
}

func NewGetAvailability(
	repo domain.Repository,
	slots *cache.AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		slots: slots,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	specialistID string,
	dateStr string,
) ([]string, error) {

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location())
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	if date.Before(timezone.Today()) {
		return nil, domain.ErrInvalidDate
	}

	sp, err := uc.repo.GetSpecialist(ctx, specialistID)
	if err != nil {
		return nil, err
	}
	if !sp.IsActive {
		return nil, domain.ErrSpecialistNotFound
	}

	if cached, ok := uc.slots.GetSlots(ctx, specialistID, dateStr); ok {
		return cached, nil
	}

	override, err := uc.repo.GetDateSchedule(ctx, specialistID, dateStr)
	if err != nil {
		return nil, err
	}

	weekly, err := uc.repo.GetWeeklyAvailability(ctx, specialistID)
	if err != nil {
		return nil, err
	}

	slotCatalog, err := uc.repo.ListTimeSlots(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListBookingsFor(ctx, specialistID, dateStr)
	if err != nil {
		return nil, err
	}

	free := domain.ResolveSlots(domain.AvailabilityInput{
		Date:     date,
		Weekly:   weekly,
		Override: override,
		Catalog:  timeSlotStrings(slotCatalog),
		Existing: existing,
	})

	uc.slots.SetSlots(ctx, specialistID, dateStr, free)

	return free, nil
}
