package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lumispa/salon-api/internal/config"
	"github.com/lumispa/salon-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.Specialist{},
		&models.SpecialistAvailability{},
		&models.SpecialistSchedule{},
		&models.TimeSlot{},
		&models.Booking{},
		&models.BookingService{},
		&models.Payment{},
		&models.BlogCategory{},
		&models.Blog{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Duas requisições concorrentes para o mesmo horário não podem passar:
	// índice único parcial cobrindo apenas agendamentos não-cancelados com
	// especialista atribuído.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_slot
        ON bookings (specialist_id, booking_date, booking_time)
        WHERE status <> 'canceled' AND specialist_id IS NOT NULL
    `)

	seedTimeSlots(db)

	return db
}

// Catálogo padrão de horários: 08:00 até 17:30 de meia em meia hora.
func seedTimeSlots(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.TimeSlot{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	var slots []models.TimeSlot
	for h := 8; h <= 17; h++ {
		for _, m := range []int{0, 30} {
			slots = append(slots, models.TimeSlot{
				Time: fmt.Sprintf("%02d:%02d", h, m),
			})
		}
	}

	if err := db.Create(&slots).Error; err != nil {
		log.Printf("failed to seed time slots: %v", err)
	}
}
