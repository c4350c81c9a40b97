package models

// Message belongs to the conversation attached to a service request.
// Either texto or an attachment must be present.
type Message struct {
	BaseModel
	RequestID     string `gorm:"column:solicitud_id;type:uuid;not null;index"`
	SenderID      string `gorm:"column:remitente_id;type:uuid;not null;index"`
	Text          string `gorm:"column:texto"`
	AttachmentURL string `gorm:"column:archivo"`
	Read          bool   `gorm:"column:leido;not null;default:false"`

	Request ServiceRequest `gorm:"foreignKey:RequestID"`
	Sender  User           `gorm:"foreignKey:SenderID"`
}

func (Message) TableName() string { return "mensajes" }
