package models

import "gorm.io/datatypes"

// ServiceRequest is a client's booking of a published service. The worker id
// is copied from the service at creation time so listings never join twice.
type ServiceRequest struct {
	BaseModel
	ServiceID string          `gorm:"column:servicio_id;type:uuid;not null;index"`
	ClientID  string          `gorm:"column:cliente_id;type:uuid;not null;index"`
	WorkerID  string          `gorm:"column:trabajador_id;type:uuid;not null;index"`
	Day       string          `gorm:"column:dia"`
	StartTime *datatypes.Time `gorm:"column:hora_inicio"`
	EndTime   *datatypes.Time `gorm:"column:hora_fin"`
	Status    string          `gorm:"column:estado;not null;default:'pendiente';index"`
	Message   string          `gorm:"column:mensaje"`

	Service Service       `gorm:"foreignKey:ServiceID"`
	Client  User          `gorm:"foreignKey:ClientID"`
	Worker  WorkerProfile `gorm:"foreignKey:WorkerID"`
	Rating  *Rating       `gorm:"foreignKey:RequestID"`
}

func (ServiceRequest) TableName() string { return "solicitudes" }

// IsTerminal reports whether the request can no longer change state.
func (r *ServiceRequest) IsTerminal() bool {
	switch r.Status {
	case RequestStatusRejected, RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// CanTransition is the request state machine. It is the single source of
// truth for which edges exist.
func CanTransition(from, to string) bool {
	switch from {
	case RequestStatusPending:
		return to == RequestStatusAccepted ||
			to == RequestStatusRejected ||
			to == RequestStatusCancelled
	case RequestStatusAccepted:
		return to == RequestStatusCompleted ||
			to == RequestStatusCancelled
	}
	return false
}
