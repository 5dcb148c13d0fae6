package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// Transições permitidas. completed e canceled são terminais.
var allowedTransitions = map[Status][]Status{
	StatusPending:  {StatusUpcoming, StatusCanceled},
	StatusUpcoming: {StatusCompleted, StatusCanceled},
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusUpcoming, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

func IsTerminal(s Status) bool {
	return len(allowedTransitions[s]) == 0
}

// AllowedNext retorna os destinos válidos a partir de um status.
func AllowedNext(current Status) []Status {
	next := allowedTransitions[current]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// Transition valida uma mudança de status. Não persiste nada: o chamador é
// o único responsável por gravar o novo status.
func Transition(current, requested Status) (Status, error) {
	for _, next := range allowedTransitions[current] {
		if next == requested {
			return requested, nil
		}
	}

	return current, &InvalidTransitionError{
		From:    current,
		To:      requested,
		Allowed: AllowedNext(current),
	}
}

// Blocks informa se um agendamento neste status ocupa o horário.
// Apenas cancelamentos liberam o slot.
func Blocks(s Status) bool {
	return s != StatusCanceled
}
