package dto

import "time"

type UpdateUserRequest struct {
	Name      string     `json:"nombre" validate:"omitempty,min=2,max=120"`
	City      string     `json:"ciudad" validate:"omitempty,max=120"`
	Phone     string     `json:"telefono" validate:"omitempty,max=30"`
	BirthDate *time.Time `json:"fecha_nacimiento"`
}

type UpdateUserStateRequest struct {
	State string `json:"estado" validate:"required,is-user-state"`
}

type UserListQuery struct {
	Role   string `form:"rol"`
	State  string `form:"estado"`
	Search string `form:"q"`
}

type UserListResponse struct {
	Users []UserDTO `json:"usuarios"`
	Meta  ListMeta  `json:"meta"`
}
