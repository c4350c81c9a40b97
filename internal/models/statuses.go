package models

// User roles.
const (
	RoleUser  = "usuario"
	RoleAdmin = "admin"
)

// Account states.
const (
	UserStateActive  = "activo"
	UserStateBlocked = "bloqueado"
	UserStateDeleted = "eliminado"
)

// Registration methods.
const (
	RegistrationMethodLocal  = "local"
	RegistrationMethodGoogle = "google"
)

// Service publication states.
const (
	PublicationStatusPending  = "pendiente"
	PublicationStatusApproved = "aprobado"
	PublicationStatusRejected = "rechazado"
)

// Request lifecycle states.
const (
	RequestStatusPending   = "pendiente"
	RequestStatusAccepted  = "aceptada"
	RequestStatusRejected  = "rechazada"
	RequestStatusCompleted = "completada"
	RequestStatusCancelled = "cancelada"
)

// Membership plans and states.
const (
	PlanFree    = "free"
	PlanPremium = "premium"

	MembershipStateActive  = "activo"
	MembershipStateExpired = "vencido"
)

// FreePlanServiceLimit caps the live services a free worker may hold.
const FreePlanServiceLimit = 3

// Week days for availability windows, as stored and served.
var WeekDays = []string{
	"lunes", "martes", "miercoles", "jueves", "viernes", "sabado", "domingo",
}

// IsWeekDay reports whether d is one of the seven accepted day values.
func IsWeekDay(d string) bool {
	for _, day := range WeekDays {
		if day == d {
			return true
		}
	}
	return false
}
