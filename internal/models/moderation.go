package models

import "time"

// ModerationRecord is created when the word scanner flags a service.
// Clean services never get one.
type ModerationRecord struct {
	BaseModel
	ServiceID     string     `gorm:"column:servicio_id;type:uuid;uniqueIndex;not null"`
	DetectedWords string     `gorm:"column:palabras_detectadas;not null"`
	Status        string     `gorm:"column:estado;not null;default:'pendiente';index"`
	ReviewedByID  *string    `gorm:"column:revisado_por_id;type:uuid"`
	ReviewedAt    *time.Time `gorm:"column:revisado_en"`

	Service    Service `gorm:"foreignKey:ServiceID"`
	ReviewedBy *User   `gorm:"foreignKey:ReviewedByID"`
}

func (ModerationRecord) TableName() string { return "registros_moderacion" }

func (m *ModerationRecord) IsResolved() bool {
	return m.Status != PublicationStatusPending
}
