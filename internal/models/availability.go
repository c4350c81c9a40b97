package models

import "gorm.io/datatypes"

// Availability is a weekly recurring window in which a worker accepts requests.
type Availability struct {
	BaseModel
	WorkerID  string         `gorm:"column:trabajador_id;type:uuid;not null;index"`
	Day       string         `gorm:"column:dia;not null"`
	StartTime datatypes.Time `gorm:"column:hora_inicio;not null"`
	EndTime   datatypes.Time `gorm:"column:hora_fin;not null"`

	Worker WorkerProfile `gorm:"foreignKey:WorkerID"`
}

func (Availability) TableName() string { return "disponibilidades" }
