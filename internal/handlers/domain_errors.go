package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	domain "github.com/lumispa/salon-api/internal/domain/booking"
	"github.com/lumispa/salon-api/internal/httperr"
)

// Tradução única dos erros do core para códigos HTTP; nenhum handler inventa
// a sua própria.
func writeBookingError(c *gin.Context, err error) {
	var ite *domain.InvalidTransitionError
	var use *domain.UnknownServiceError
	var ise *domain.InactiveServiceError

	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")

	case errors.Is(err, domain.ErrSpecialistNotFound):
		httperr.NotFound(c, "specialist_not_found", "Especialista não encontrado.")

	case errors.Is(err, domain.ErrInvalidDate):
		httperr.BadRequest(c, "invalid_date", "Data inválida ou no passado.")

	case errors.Is(err, domain.ErrEmptyServiceSelection):
		httperr.BadRequest(c, "empty_service_selection", "Selecione pelo menos um serviço.")

	case errors.Is(err, domain.ErrSlotAlreadyTaken):
		httperr.Conflict(c, "slot_already_taken", "Horário acabou de ser ocupado.")

	case errors.Is(err, domain.ErrSlotUnavailable):
		httperr.BadRequest(c, "slot_unavailable", "Horário fora da disponibilidade.")

	case errors.As(err, &ite):
		httperr.BadRequest(c, "invalid_transition", ite.Error())

	case errors.As(err, &use):
		httperr.BadRequest(c, "unknown_service", use.Error())

	case errors.As(err, &ise):
		httperr.BadRequest(c, "inactive_service", ise.Error())

	default:
		httperr.Internal(c, "booking_error", "Erro ao processar agendamento.")
	}
}
