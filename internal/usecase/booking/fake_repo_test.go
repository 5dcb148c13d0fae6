package booking

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/lumispa/salon-api/internal/domain/booking"
	"github.com/lumispa/salon-api/internal/models"
)

// Repositório em memória com a mesma garantia de unicidade de slot do banco.
type fakeRepo struct {
	services    map[string]models.Service
	specialists map[string]models.Specialist
	weekly      map[string][]models.SpecialistAvailability
	schedules   map[string]*models.SpecialistSchedule // key specialistID|date
	timeSlots   []models.TimeSlot
	bookings    map[string]*models.Booking
	lines       map[string][]models.BookingService

	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:    map[string]models.Service{},
		specialists: map[string]models.Specialist{},
		weekly:      map[string][]models.SpecialistAvailability{},
		schedules:   map[string]*models.SpecialistSchedule{},
		bookings:    map[string]*models.Booking{},
		lines:       map[string][]models.BookingService{},
	}
}

func (f *fakeRepo) GetService(_ context.Context, id string) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &svc, nil
}

func (f *fakeRepo) ListActiveServices(_ context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range f.services {
		if svc.IsActive {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetSpecialist(_ context.Context, id string) (*models.Specialist, error) {
	sp, ok := f.specialists[id]
	if !ok {
		return nil, domain.ErrSpecialistNotFound
	}
	return &sp, nil
}

func (f *fakeRepo) GetWeeklyAvailability(_ context.Context, specialistID string) ([]models.SpecialistAvailability, error) {
	return f.weekly[specialistID], nil
}

func (f *fakeRepo) GetDateSchedule(_ context.Context, specialistID, date string) (*models.SpecialistSchedule, error) {
	return f.schedules[specialistID+"|"+date], nil
}

func (f *fakeRepo) ListTimeSlots(_ context.Context) ([]models.TimeSlot, error) {
	return f.timeSlots, nil
}

func (f *fakeRepo) ListBookingsFor(_ context.Context, specialistID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.SpecialistID != nil && *b.SpecialistID == specialistID && b.BookingDate == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking, lines []models.BookingService) error {
	if b.SpecialistID != nil {
		for _, other := range f.bookings {
			if other.SpecialistID != nil &&
				*other.SpecialistID == *b.SpecialistID &&
				other.BookingDate == b.BookingDate &&
				other.BookingTime == b.BookingTime &&
				domain.Blocks(domain.Status(other.Status)) {
				return domain.ErrSlotAlreadyTaken
			}
		}
	}

	f.nextID++
	b.ID = fmt.Sprintf("booking-%d", f.nextID)

	stored := *b
	f.bookings[b.ID] = &stored

	for i := range lines {
		lines[i].BookingID = b.ID
	}
	f.lines[b.ID] = lines

	return nil
}

func (f *fakeRepo) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	copied := *b
	copied.Services = f.lines[id]
	return &copied, nil
}

func (f *fakeRepo) UpdateBookingStatus(_ context.Context, b *models.Booking) error {
	stored, ok := f.bookings[b.ID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	stored.Status = b.Status
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------------------------------------------------
// Fixtures
// --------------------------------------------------

func (f *fakeRepo) withService(id string, price int64, durationMin int, active bool) *fakeRepo {
	f.services[id] = models.Service{
		ID:          id,
		Name:        "service " + id,
		Price:       price,
		DurationMin: durationMin,
		IsActive:    active,
	}
	return f
}

func (f *fakeRepo) withSpecialist(id string, active bool) *fakeRepo {
	f.specialists[id] = models.Specialist{
		ID:       id,
		Name:     "specialist " + id,
		Role:     "Hair Stylist",
		IsActive: active,
	}
	return f
}

func (f *fakeRepo) withWeekly(specialistID string, dayOfWeek int, start, end string) *fakeRepo {
	f.weekly[specialistID] = append(f.weekly[specialistID], models.SpecialistAvailability{
		SpecialistID: specialistID,
		DayOfWeek:    dayOfWeek,
		StartTime:    start,
		EndTime:      end,
		IsAvailable:  true,
	})
	return f
}

func (f *fakeRepo) withTimeSlots(times ...string) *fakeRepo {
	for _, t := range times {
		f.timeSlots = append(f.timeSlots, models.TimeSlot{ID: t, Time: t})
	}
	return f
}
