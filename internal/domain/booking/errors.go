package booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrSpecialistNotFound = errors.New("specialist not found")

	// Política: nunca resolver slots nem criar agendamentos para datas passadas
	ErrInvalidDate = errors.New("date is in the past")

	// Um agendamento precisa de pelo menos uma linha de serviço
	ErrEmptyServiceSelection = errors.New("booking requires at least one service")

	// Conflito detectado na escrita (índice único do storage)
	ErrSlotAlreadyTaken = errors.New("slot already taken")

	// Horário fora da disponibilidade do especialista na data
	ErrSlotUnavailable = errors.New("slot not available for this specialist and date")
)

type InvalidTransitionError struct {
	From    Status
	To      Status
	Allowed []Status
}

func (e *InvalidTransitionError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("invalid transition %s -> %s: %s is terminal", e.From, e.To, e.From)
	}

	allowed := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		allowed[i] = string(s)
	}
	return fmt.Sprintf("invalid transition %s -> %s: allowed next states are %s",
		e.From, e.To, strings.Join(allowed, ", "))
}

type UnknownServiceError struct {
	ServiceID string
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("unknown service %s", e.ServiceID)
}

type InactiveServiceError struct {
	ServiceID string
}

func (e *InactiveServiceError) Error() string {
	return fmt.Sprintf("service %s is inactive and cannot be booked", e.ServiceID)
}
