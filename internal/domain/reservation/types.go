package reservation

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Phase is the lifecycle position of a (spot, reservation) pair.
type Phase string

const (
	PhaseFree      Phase = "free"
	PhaseReserved  Phase = "reserved"
	PhaseParked    Phase = "parked"
	PhaseCompleted Phase = "completed"
	PhaseCancelled Phase = "cancelled"
)

// PhaseOf reports PhaseFree for a spot that has no reservation.
func PhaseOf(r *Reservation) Phase {
	if r == nil {
		return PhaseFree
	}
	return r.Phase()
}
