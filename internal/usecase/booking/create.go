package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lumispa/salon-api/internal/audit"
	"github.com/lumispa/salon-api/internal/cache"
	domain "github.com/lumispa/salon-api/internal/domain/booking"
	"github.com/lumispa/salon-api/internal/models"
	"github.com/lumispa/salon-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	// nil = ainda sem especialista atribuído
	SpecialistID *string

	Date string // YYYY-MM-DD
	Time string // HH:mm

	ServiceIDs []string
	Notes      string

	// Conta logada, quando houver
	UserID *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.AvailabilityCache
}

func NewCreateBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	slots *cache.AvailabilityCache,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: auditDispatcher,
		slots: slots,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Data e hora válidas, nunca no passado
	// --------------------------------------------------
	date, err := time.ParseInLocation("2006-01-02", in.Date, timezone.Location())
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, domain.ErrInvalidDate
	}
	if date.Before(timezone.Today()) {
		return nil, domain.ErrInvalidDate
	}

	// --------------------------------------------------
	// 2. Serviços selecionados → preço total + linhas capturadas
	// --------------------------------------------------
	if len(in.ServiceIDs) == 0 {
		return nil, domain.ErrEmptyServiceSelection
	}

	catalog := make([]models.Service, 0, len(in.ServiceIDs))
	for _, id := range in.ServiceIDs {
		svc, err := uc.repo.GetService(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &domain.UnknownServiceError{ServiceID: id}
			}
			return nil, err
		}
		catalog = append(catalog, *svc)
	}

	total, priced, err := domain.ComputeTotal(in.ServiceIDs, catalog)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Especialista atribuído → slot precisa estar livre
	// --------------------------------------------------
	if in.SpecialistID != nil {
		if err := uc.assertSlotFree(ctx, *in.SpecialistID, in.Date, date, in.Time); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 4. Escrita atômica: agendamento + linhas numa transação
	// --------------------------------------------------
	b := &models.Booking{
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		SpecialistID:  in.SpecialistID,
		BookingDate:   in.Date,
		BookingTime:   in.Time,
		Status:        string(domain.StatusPending),
		TotalPrice:    total,
		Notes:         in.Notes,
		UserID:        in.UserID,
	}

	lines := make([]models.BookingService, 0, len(priced))
	for _, line := range priced {
		lines = append(lines, models.BookingService{
			ServiceID: line.ServiceID,
			Price:     line.Price,
		})
	}

	if err := uc.repo.CreateBooking(ctx, b, lines); err != nil {
		return nil, err
	}
	b.Services = lines

	// --------------------------------------------------
	// 5. Auditoria + invalidação do cache de slots
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	if in.SpecialistID != nil {
		uc.slots.Invalidate(ctx, *in.SpecialistID, in.Date)
	}

	return b, nil
}

// assertSlotFree aplica a guarda de leitura: especialista ativo e horário
// presente no conjunto resolvido. A exclusão definitiva fica com o índice
// único do storage na hora da escrita.
func (uc *CreateBooking) assertSlotFree(
	ctx context.Context,
	specialistID string,
	dateStr string,
	date time.Time,
	timeStr string,
) error {

	sp, err := uc.repo.GetSpecialist(ctx, specialistID)
	if err != nil {
		return err
	}
	if !sp.IsActive {
		return domain.ErrSpecialistNotFound
	}

	existing, err := uc.repo.ListBookingsFor(ctx, specialistID, dateStr)
	if err != nil {
		return err
	}

	for _, b := range existing {
		if b.BookingTime == timeStr && domain.Blocks(domain.Status(b.Status)) {
			return domain.ErrSlotAlreadyTaken
		}
	}

	override, err := uc.repo.GetDateSchedule(ctx, specialistID, dateStr)
	if err != nil {
		return err
	}

	weekly, err := uc.repo.GetWeeklyAvailability(ctx, specialistID)
	if err != nil {
		return err
	}

	slotCatalog, err := uc.repo.ListTimeSlots(ctx)
	if err != nil {
		return err
	}

	free := domain.ResolveSlots(domain.AvailabilityInput{
		Date:     date,
		Weekly:   weekly,
		Override: override,
		Catalog:  timeSlotStrings(slotCatalog),
		Existing: existing,
	})

	for _, slot := range free {
		if slot == timeStr {
			return nil
		}
	}

	return domain.ErrSlotUnavailable
}

func timeSlotStrings(slots []models.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}
