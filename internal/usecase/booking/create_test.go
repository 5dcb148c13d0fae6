package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/lumispa/salon-api/internal/domain/booking"
	"github.com/lumispa/salon-api/internal/timezone"
)

// Data futura com o mesmo weekday de hoje, para casar com o template semanal.
func futureDate() (time.Time, string) {
	d := timezone.Today().AddDate(0, 0, 7)
	return d, d.Format("2006-01-02")
}

func strPtr(s string) *string { return &s }

func bookableRepo() *fakeRepo {
	date, _ := futureDate()

	return newFakeRepo().
		withService("svc-a", 200000, 30, true).
		withService("svc-b", 150000, 45, true).
		withService("svc-off", 500000, 60, false).
		withSpecialist("spec-1", true).
		withWeekly("spec-1", int(date.Weekday()), "09:00", "12:00").
		withTimeSlots("08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30")
}

func TestCreateBooking_EndToEnd(t *testing.T) {
	repo := bookableRepo()
	uc := NewCreateBooking(repo, nil, nil)
	_, dateStr := futureDate()

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerName:  "Nguyễn Thị Mai",
		CustomerPhone: "0901234567",
		SpecialistID:  strPtr("spec-1"),
		Date:          dateStr,
		Time:          "09:00",
		ServiceIDs:    []string{"svc-a", "svc-b"},
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), b.Status)
	assert.Equal(t, int64(350000), b.TotalPrice)

	require.Len(t, b.Services, 2)
	assert.Equal(t, int64(200000), b.Services[0].Price)
	assert.Equal(t, int64(150000), b.Services[1].Price)
	for _, line := range b.Services {
		assert.Equal(t, b.ID, line.BookingID)
	}
}

func TestCreateBooking_EmptySelectionRejected(t *testing.T) {
	uc := NewCreateBooking(bookableRepo(), nil, nil)
	_, dateStr := futureDate()

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerName:  "Trần Văn An",
		CustomerPhone: "0907654321",
		Date:          dateStr,
		Time:          "09:00",
		ServiceIDs:    nil,
	})

	assert.ErrorIs(t, err, domain.ErrEmptyServiceSelection)
}

func TestCreateBooking_UnknownService(t *testing.T) {
	uc := NewCreateBooking(bookableRepo(), nil, nil)
	_, dateStr := futureDate()

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerName:  "Trần Văn An",
		CustomerPhone: "0907654321",
		Date:          dateStr,
		Time:          "09:00",
		ServiceIDs:    []string{"svc-a", "svc-missing"},
	})

	var use *domain.UnknownServiceError
	require.True(t, errors.As(err, &use))
	assert.Equal(t, "svc-missing", use.ServiceID)
}

func TestCreateBooking_InactiveService(t *testing.T) {
	uc := NewCreateBooking(bookableRepo(), nil, nil)
	_, dateStr := futureDate()

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerName:  "Trần Văn An",
		CustomerPhone: "0907654321",
		Date:          dateStr,
		Time:          "09:00",
		ServiceIDs:    []string{"svc-off"},
	})

	var ise *domain.InactiveServiceError
	require.True(t, errors.As(err, &ise))
}

func TestCreateBooking_PastDateRejected(t *testing.T) {
	uc := NewCreateBooking(bookableRepo(), nil, nil)
	yesterday := timezone.Today().AddDate(0, 0, -1).Format("2006-01-02")

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerName:  "Trần Văn An",
		CustomerPhone: "0907654321",
		Date:          yesterday,
		Time:          "09:00",
		ServiceIDs:    []string{"svc-a"},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestCreateBooking_SlotAlreadyTaken(t *testing.T) {
	repo := bookableRepo()
	uc := NewCreateBooking(repo, nil, nil)
	_, dateStr := futureDate()

	in := CreateBookingInput{
		CustomerName:  "Nguyễn Thị Mai",
		CustomerPhone: "0901234567",
		SpecialistID:  strPtr("spec-1"),
		Date:          dateStr,
		Time:          "10:00",
		ServiceIDs:    []string{"svc-a"},
	}

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	in.CustomerName = "Lê Hồng Phúc"
	_, err = uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrSlotAlreadyTaken)
}

func TestCreateBooking_CanceledBookingFreesSlot(t *testing.T) {
	repo := bookableRepo()
	uc := NewCreateBooking(repo, nil, nil)
	updater := NewUpdateStatus(repo, nil, nil)
	_, dateStr := futureDate()

	in := CreateBookingInput{
		CustomerName:  "Nguyễn Thị Mai",
		CustomerPhone: "0901234567",
		SpecialistID:  strPtr("spec-1"),
		Date:          dateStr,
		Time:          "10:00",
		ServiceIDs:    []string{"svc-a"},
	}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	_, err = updater.Execute(context.Background(), first.ID, domain.StatusCanceled, nil)
	require.NoError(t, err)

	in.CustomerName = "Lê Hồng Phúc"
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateBooking_SlotOutsideAvailability(t *testing.T) {
	uc := NewCreateBooking(bookableRepo(), nil, nil)
	_, dateStr := futureDate()

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerName:  "Trần Văn An",
		CustomerPhone: "0907654321",
		SpecialistID:  strPtr("spec-1"),
		Date:          dateStr,
		Time:          "15:00", // template vai só até 12:00
		ServiceIDs:    []string{"svc-a"},
	})

	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestCreateBooking_InactiveSpecialistRejected(t *testing.T) {
	repo := bookableRepo().withSpecialist("spec-off", false)
	uc := NewCreateBooking(repo, nil, nil)
	_, dateStr := futureDate()

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerName:  "Trần Văn An",
		CustomerPhone: "0907654321",
		SpecialistID:  strPtr("spec-off"),
		Date:          dateStr,
		Time:          "09:00",
		ServiceIDs:    []string{"svc-a"},
	})

	assert.ErrorIs(t, err, domain.ErrSpecialistNotFound)
}

// Sem especialista atribuído não há exclusividade de slot: dois pedidos no
// mesmo horário podem coexistir até um admin distribuir os atendimentos.
func TestCreateBooking_UnassignedSkipsSlotGuard(t *testing.T) {
	repo := bookableRepo()
	uc := NewCreateBooking(repo, nil, nil)
	_, dateStr := futureDate()

	in := CreateBookingInput{
		CustomerName:  "Nguyễn Thị Mai",
		CustomerPhone: "0901234567",
		Date:          dateStr,
		Time:          "10:00",
		ServiceIDs:    []string{"svc-a"},
	}

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	in.CustomerName = "Lê Hồng Phúc"
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}
