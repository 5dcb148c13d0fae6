package booking

import (
	"context"

	"github.com/lumispa/salon-api/internal/models"
)

type Repository interface {
	// -------- Service catalog --------
	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	ListActiveServices(
		ctx context.Context,
	) ([]models.Service, error)

	// -------- Specialist --------
	GetSpecialist(
		ctx context.Context,
		id string,
	) (*models.Specialist, error)

	GetWeeklyAvailability(
		ctx context.Context,
		specialistID string,
	) ([]models.SpecialistAvailability, error)

	GetDateSchedule(
		ctx context.Context,
		specialistID string,
		date string,
	) (*models.SpecialistSchedule, error)

	// -------- Slot catalog --------
	ListTimeSlots(
		ctx context.Context,
	) ([]models.TimeSlot, error)

	// -------- Booking --------
	ListBookingsFor(
		ctx context.Context,
		specialistID string,
		date string,
	) ([]models.Booking, error)

	// CreateBooking grava o agendamento e as linhas numa única transação.
	// Violação do índice único de slot vem como ErrSlotAlreadyTaken.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
		lines []models.BookingService,
	) error

	GetBooking(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	UpdateBookingStatus(
		ctx context.Context,
		b *models.Booking,
	) error
}
