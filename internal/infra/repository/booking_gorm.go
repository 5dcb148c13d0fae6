package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/lumispa/salon-api/internal/domain/booking"
	"github.com/lumispa/salon-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) ListActiveServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("is_active = true").
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Specialist
// --------------------------------------------------

func (r *BookingGormRepository) GetSpecialist(
	ctx context.Context,
	id string,
) (*models.Specialist, error) {

	var sp models.Specialist
	if err := r.db.WithContext(ctx).First(&sp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSpecialistNotFound
		}
		return nil, err
	}
	return &sp, nil
}

func (r *BookingGormRepository) GetWeeklyAvailability(
	ctx context.Context,
	specialistID string,
) ([]models.SpecialistAvailability, error) {

	var rows []models.SpecialistAvailability
	if err := r.db.WithContext(ctx).
		Where("specialist_id = ?", specialistID).
		Order("day_of_week ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingGormRepository) GetDateSchedule(
	ctx context.Context,
	specialistID string,
	date string,
) (*models.SpecialistSchedule, error) {

	var sched models.SpecialistSchedule
	err := r.db.WithContext(ctx).
		Where("specialist_id = ? AND date = ?", specialistID, date).
		First(&sched).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // ausência de override não é erro
	}
	if err != nil {
		return nil, err
	}

	return &sched, nil
}

// --------------------------------------------------
// Slot catalog
// --------------------------------------------------

func (r *BookingGormRepository) ListTimeSlots(
	ctx context.Context,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Order("time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsFor(
	ctx context.Context,
	specialistID string,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "booking_time", "status").
		Where("specialist_id = ? AND booking_date = ?", specialistID, date).
		Order("booking_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking grava o agendamento e as linhas numa única transação, de modo
// que nunca fica um agendamento órfão sem linhas no banco.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
	lines []models.BookingService,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return err
		}

		for i := range lines {
			lines[i].BookingID = b.ID
		}

		return tx.Create(&lines).Error
	})

	if isUniqueViolation(err) {
		return domain.ErrSlotAlreadyTaken
	}

	return err
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Preload("Services").
		Preload("Specialist").
		First(&b, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", b.ID).
		Update("status", b.Status).Error

	if isUniqueViolation(err) {
		return domain.ErrSlotAlreadyTaken
	}

	return err
}

// Código 23505 = unique_violation: o índice parcial de slot barrou a escrita.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
