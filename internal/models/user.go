package models

import "time"

type User struct {
	BaseModel
	Email              string     `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash       string     `gorm:"column:password_hash"`
	Name               string     `gorm:"column:nombre;not null"`
	City               string     `gorm:"column:ciudad"`
	Phone              string     `gorm:"column:telefono"`
	BirthDate          *time.Time `gorm:"column:fecha_nacimiento"`
	PhotoURL           string     `gorm:"column:foto_perfil"`
	Role               string     `gorm:"column:rol;not null;default:'usuario'"`
	State              string     `gorm:"column:estado;not null;default:'activo'"`
	RegistrationMethod string     `gorm:"column:metodo_registro;not null;default:'local'"`

	WorkerProfile *WorkerProfile `gorm:"foreignKey:UserID"`
}

func (User) TableName() string { return "usuarios" }

func (u *User) IsAdmin() bool   { return u.Role == RoleAdmin }
func (u *User) IsBlocked() bool { return u.State == UserStateBlocked }
func (u *User) IsDeleted() bool { return u.State == UserStateDeleted }

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"column:user_id;type:uuid;not null;index"`
	TokenHash string    `gorm:"column:token_hash;uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
	Revoked   bool      `gorm:"column:revoked;not null;default:false"`

	User User `gorm:"foreignKey:UserID"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }
