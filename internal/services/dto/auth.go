package dto

import "time"

type RegisterRequest struct {
	Name     string `json:"nombre" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	City     string `json:"ciudad" validate:"omitempty,max=120"`
	Phone    string `json:"telefono" validate:"omitempty,max=30"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries the access token obtained by the frontend from
// Google's OAuth flow.
type GoogleLoginRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

type UserDTO struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	Name               string     `json:"nombre"`
	City               string     `json:"ciudad,omitempty"`
	Phone              string     `json:"telefono,omitempty"`
	BirthDate          *time.Time `json:"fecha_nacimiento,omitempty"`
	PhotoURL           string     `json:"foto_perfil,omitempty"`
	Role               string     `json:"rol"`
	State              string     `json:"estado"`
	RegistrationMethod string     `json:"metodo_registro"`
	CreatedAt          time.Time  `json:"created_at"`
}
