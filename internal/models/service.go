package models

import "time"

type Service struct {
	BaseModel
	WorkerID          string     `gorm:"column:trabajador_id;type:uuid;not null;index"`
	Title             string     `gorm:"column:titulo;not null"`
	Description       string     `gorm:"column:descripcion;not null"`
	Category          string     `gorm:"column:categoria;not null;index"`
	Price             float64    `gorm:"column:precio;not null;check:precio > 0"`
	PhotoURL          string     `gorm:"column:foto_url"`
	PublicationStatus string     `gorm:"column:estado_publicacion;not null;default:'pendiente';index"`
	WordsDetected     bool       `gorm:"column:palabras_detectadas;not null;default:false"`
	PublishedAt       *time.Time `gorm:"column:fecha_publicacion"`

	Worker WorkerProfile `gorm:"foreignKey:WorkerID"`
}

func (Service) TableName() string { return "servicios" }

// IsLive reports whether the service counts against the free plan limit.
func (s *Service) IsLive() bool {
	return s.PublicationStatus == PublicationStatusPending ||
		s.PublicationStatus == PublicationStatusApproved
}
