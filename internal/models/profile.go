package models

type WorkerProfile struct {
	BaseModel
	UserID       string  `gorm:"column:user_id;type:uuid;uniqueIndex;not null"`
	MainCategory string  `gorm:"column:categoria_principal;not null"`
	Description  string  `gorm:"column:descripcion"`
	Experience   int     `gorm:"column:experiencia;default:0"`
	Skills       string  `gorm:"column:habilidades"`
	State        string  `gorm:"column:estado;not null;default:'activo'"`
	Rating       float64 `gorm:"column:rating;default:0"`

	User           User           `gorm:"foreignKey:UserID"`
	Services       []Service      `gorm:"foreignKey:WorkerID"`
	Availabilities []Availability `gorm:"foreignKey:WorkerID"`
}

func (WorkerProfile) TableName() string { return "perfiles_trabajador" }
