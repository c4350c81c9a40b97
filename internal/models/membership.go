package models

import "time"

type Membership struct {
	BaseModel
	WorkerID  string     `gorm:"column:trabajador_id;type:uuid;uniqueIndex;not null"`
	Plan      string     `gorm:"column:plan;not null;default:'free'"`
	State     string     `gorm:"column:estado;not null;default:'activo'"`
	StartDate time.Time  `gorm:"column:fecha_inicio;default:now()"`
	EndDate   *time.Time `gorm:"column:fecha_fin"`

	Worker WorkerProfile `gorm:"foreignKey:WorkerID"`
}

func (Membership) TableName() string { return "membresias" }

func (m *Membership) IsPremium() bool { return m.Plan == PlanPremium }
