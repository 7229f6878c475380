package httperr

// Códigos estáveis de rejeição do pipeline de agendamento. A camada HTTP
// mapeia cada um para um status sem re-derivar qual regra falhou.
const (
	CodeHoliday            = "holiday_not_allowed"
	CodeLeadTime           = "insufficient_lead_time"
	CodeTimeConflict       = "time_conflict"
	CodeCustomerNotFound   = "customer_not_found"
	CodeCustomerAllergy    = "customer_has_allergy"
	CodeCustomerUnderAge   = "customer_under_min_age"
	CodeCustomerIneligible = "customer_not_eligible"
	CodeServiceNotFound    = "service_not_found"
	CodeScheduleNotFound   = "schedule_not_found"
	CodeInvalidTransition  = "invalid_status_transition"
)
