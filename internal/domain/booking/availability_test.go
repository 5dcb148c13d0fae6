package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumispa/salon-api/internal/models"
)

// Segunda-feira de referência para os testes de weekday.
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

var halfHourCatalog = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30",
	"11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	"17:00", "17:30",
}

func mondayMorning(specialistID string) []models.SpecialistAvailability {
	return []models.SpecialistAvailability{{
		SpecialistID: specialistID,
		DayOfWeek:    1, // segunda
		StartTime:    "09:00",
		EndTime:      "12:00",
		IsAvailable:  true,
	}}
}

func bookingAt(timeStr, status string) models.Booking {
	return models.Booking{
		BookingDate: monday.Format("2006-01-02"),
		BookingTime: timeStr,
		Status:      status,
	}
}

func TestResolveSlots_WeeklyTemplate(t *testing.T) {
	require.Equal(t, time.Monday, monday.Weekday())

	slots := ResolveSlots(AvailabilityInput{
		Date:    monday,
		Weekly:  mondayMorning("spec-1"),
		Catalog: halfHourCatalog,
	})

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slots)
}

func TestResolveSlots_NonCanceledBookingBlocksSlot(t *testing.T) {
	for _, status := range []string{"pending", "upcoming", "completed"} {
		t.Run(status, func(t *testing.T) {
			slots := ResolveSlots(AvailabilityInput{
				Date:     monday,
				Weekly:   mondayMorning("spec-1"),
				Catalog:  halfHourCatalog,
				Existing: []models.Booking{bookingAt("10:00", status)},
			})

			assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, slots)
		})
	}
}

func TestResolveSlots_CancellationFreesSlot(t *testing.T) {
	slots := ResolveSlots(AvailabilityInput{
		Date:     monday,
		Weekly:   mondayMorning("spec-1"),
		Catalog:  halfHourCatalog,
		Existing: []models.Booking{bookingAt("10:00", "canceled")},
	})

	assert.Contains(t, slots, "10:00")
	assert.Len(t, slots, 6)
}

func TestResolveSlots_OverrideSupersedesTemplate(t *testing.T) {
	weekly := []models.SpecialistAvailability{{
		SpecialistID: "spec-1",
		DayOfWeek:    1,
		StartTime:    "09:00",
		EndTime:      "17:00",
		IsAvailable:  true,
	}}

	slots := ResolveSlots(AvailabilityInput{
		Date:   monday,
		Weekly: weekly,
		Override: &models.SpecialistSchedule{
			SpecialistID: "spec-1",
			Date:         monday.Format("2006-01-02"),
			TimeSlots:    []string{"14:00"},
		},
		Catalog: halfHourCatalog,
	})

	assert.Equal(t, []string{"14:00"}, slots)
}

func TestResolveSlots_OverrideStillSubtractsBookings(t *testing.T) {
	slots := ResolveSlots(AvailabilityInput{
		Date: monday,
		Override: &models.SpecialistSchedule{
			SpecialistID: "spec-1",
			Date:         monday.Format("2006-01-02"),
			TimeSlots:    []string{"14:00", "15:00"},
		},
		Existing: []models.Booking{bookingAt("14:00", "upcoming")},
	})

	assert.Equal(t, []string{"15:00"}, slots)
}

func TestResolveSlots_NoTemplateForWeekday(t *testing.T) {
	weekly := []models.SpecialistAvailability{{
		SpecialistID: "spec-1",
		DayOfWeek:    2, // terça, não segunda
		StartTime:    "09:00",
		EndTime:      "12:00",
		IsAvailable:  true,
	}}

	slots := ResolveSlots(AvailabilityInput{
		Date:    monday,
		Weekly:  weekly,
		Catalog: halfHourCatalog,
	})

	assert.Empty(t, slots)
}

func TestResolveSlots_ExplicitlyUnavailableWeekday(t *testing.T) {
	weekly := mondayMorning("spec-1")
	weekly[0].IsAvailable = false

	slots := ResolveSlots(AvailabilityInput{
		Date:    monday,
		Weekly:  weekly,
		Catalog: halfHourCatalog,
	})

	assert.Empty(t, slots)
}

func TestResolveSlots_ReturnsAscendingOrder(t *testing.T) {
	slots := ResolveSlots(AvailabilityInput{
		Date: monday,
		Override: &models.SpecialistSchedule{
			SpecialistID: "spec-1",
			Date:         monday.Format("2006-01-02"),
			TimeSlots:    []string{"16:00", "09:00", "12:30"},
		},
	})

	assert.Equal(t, []string{"09:00", "12:30", "16:00"}, slots)
}
