package dto

import "time"

// Linha achatada da tabela de agendamentos do back-office.
type BookingListDTO struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail string    `json:"customer_email"`
	Specialist    string    `json:"specialist"`
	Services      []string  `json:"services"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Status        string    `json:"status"`
	TotalPrice    int64     `json:"total_price"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

type TransactionListDTO struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	BookingID     string    `json:"booking_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Amount        int64     `json:"amount"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
