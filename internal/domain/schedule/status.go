package schedule

// ===============================
// Schedule Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCanceled  Status = "CANCELED"
	StatusCompleted Status = "COMPLETED"
)

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Transições
// ===============================

// CanConfirm: apenas agendamentos pendentes podem ser confirmados
func CanConfirm(current Status) bool {
	return current == StatusPending
}

// CanCancel: agendamentos pendentes ou confirmados podem ser cancelados
func CanCancel(current Status) bool {
	return current == StatusPending || current == StatusConfirmed
}

// CanComplete: apenas agendamentos confirmados podem ser concluídos
func CanComplete(current Status) bool {
	return current == StatusConfirmed
}

// IsTerminal: CANCELED e COMPLETED não admitem novas transições
func IsTerminal(current Status) bool {
	return current == StatusCanceled || current == StatusCompleted
}
