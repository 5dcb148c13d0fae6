package booking

import (
	"context"

	"github.com/lumispa/salon-api/internal/audit"
	"github.com/lumispa/salon-api/internal/cache"
	domain "github.com/lumispa/salon-api/internal/domain/booking"
	"github.com/lumispa/salon-api/internal/models"
)

// UpdateStatus é o único caminho de escrita de status: toda transição passa
// pela máquina de estados, venha de onde vier o pedido.
type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.AvailabilityCache
}

func NewUpdateStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	slots *cache.AvailabilityCache,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: auditDispatcher,
		slots: slots,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	bookingID string,
	requested domain.Status,
	actorID *string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	current := domain.Status(b.Status)

	if !domain.IsValidStatus(requested) {
		return nil, &domain.InvalidTransitionError{
			From:    current,
			To:      requested,
			Allowed: domain.AllowedNext(current),
		}
	}

	next, err := domain.Transition(current, requested)
	if err != nil {
		return nil, err
	}

	b.Status = string(next)
	if err := uc.repo.UpdateBookingStatus(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "booking_" + string(next),
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{"from": string(current)},
	})

	// cancelamento devolve o slot → invalida o cache de disponibilidade
	if next == domain.StatusCanceled && b.SpecialistID != nil {
		uc.slots.Invalidate(ctx, *b.SpecialistID, b.BookingDate)
	}

	return b, nil
}
