package models

type Rating struct {
	BaseModel
	RequestID string `gorm:"column:solicitud_id;type:uuid;uniqueIndex;not null"`
	ClientID  string `gorm:"column:cliente_id;type:uuid;not null;index"`
	WorkerID  string `gorm:"column:trabajador_id;type:uuid;not null;index"`
	Score     int    `gorm:"column:puntaje;not null;check:puntaje >= 1 AND puntaje <= 5"`
	Comment   string `gorm:"column:comentario"`

	Request ServiceRequest `gorm:"foreignKey:RequestID"`
	Client  User           `gorm:"foreignKey:ClientID"`
	Worker  WorkerProfile  `gorm:"foreignKey:WorkerID"`
}

func (Rating) TableName() string { return "calificaciones" }
