package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/lumispa/salon-api/internal/domain/booking"
	"github.com/lumispa/salon-api/internal/timezone"
)

func TestGetAvailability_ExcludesBookedSlot(t *testing.T) {
	repo := bookableRepo()
	createUC := NewCreateBooking(repo, nil, nil)
	uc := NewGetAvailability(repo, nil)
	_, dateStr := futureDate()

	_, err := createUC.Execute(context.Background(), CreateBookingInput{
		CustomerName:  "Nguyễn Thị Mai",
		CustomerPhone: "0901234567",
		SpecialistID:  strPtr("spec-1"),
		Date:          dateStr,
		Time:          "10:00",
		ServiceIDs:    []string{"svc-a"},
	})
	require.NoError(t, err)

	slots, err := uc.Execute(context.Background(), "spec-1", dateStr)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, slots)
}

func TestGetAvailability_PastDate(t *testing.T) {
	uc := NewGetAvailability(bookableRepo(), nil)
	yesterday := timezone.Today().AddDate(0, 0, -1).Format("2006-01-02")

	_, err := uc.Execute(context.Background(), "spec-1", yesterday)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestGetAvailability_UnknownSpecialist(t *testing.T) {
	uc := NewGetAvailability(bookableRepo(), nil)
	_, dateStr := futureDate()

	_, err := uc.Execute(context.Background(), "missing", dateStr)
	assert.ErrorIs(t, err, domain.ErrSpecialistNotFound)
}

func TestGetAvailability_InactiveSpecialist(t *testing.T) {
	repo := bookableRepo().withSpecialist("spec-off", false)
	uc := NewGetAvailability(repo, nil)
	_, dateStr := futureDate()

	_, err := uc.Execute(context.Background(), "spec-off", dateStr)
	assert.ErrorIs(t, err, domain.ErrSpecialistNotFound)
}
