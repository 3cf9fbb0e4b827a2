package booking

import "errors"

var ErrInvalidStatus = errors.New("invalid booking status")

// Statuses keep the source system's Spanish values; they are stored and
// compared verbatim.
type Status string

const (
	StatusPendiente  Status = "pendiente"
	StatusConfirmada Status = "confirmada"
	StatusCompletada Status = "completada"
	StatusCancelada  Status = "cancelada"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPendiente, StatusConfirmada, StatusCompletada, StatusCancelada:
		return true
	default:
		return false
	}
}

// Blocking statuses hold a time slot: a new booking on the same
// fecha+hora conflicts with these.
func (s Status) Blocks() bool {
	return s == StatusPendiente || s == StatusConfirmada
}

// Cancellable statuses may transition to cancelada. Completed and
// already-cancelled bookings are terminal.
func (s Status) Cancellable() bool {
	return s == StatusPendiente || s == StatusConfirmada
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
