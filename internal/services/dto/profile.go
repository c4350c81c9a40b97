package dto

type CreateProfileRequest struct {
	MainCategory string `json:"categoria_principal" validate:"required,max=120"`
	Description  string `json:"descripcion" validate:"omitempty,max=2000"`
	Experience   int    `json:"experiencia" validate:"omitempty,gte=0,lte=80"`
	Skills       string `json:"habilidades" validate:"omitempty,max=1000"`
}

type UpdateProfileRequest struct {
	MainCategory string `json:"categoria_principal" validate:"omitempty,max=120"`
	Description  string `json:"descripcion" validate:"omitempty,max=2000"`
	Experience   int    `json:"experiencia" validate:"omitempty,gte=0,lte=80"`
	Skills       string `json:"habilidades" validate:"omitempty,max=1000"`
}

type ProfileResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Name         string  `json:"nombre"`
	City         string  `json:"ciudad,omitempty"`
	PhotoURL     string  `json:"foto_perfil,omitempty"`
	MainCategory string  `json:"categoria_principal"`
	Description  string  `json:"descripcion,omitempty"`
	Experience   int     `json:"experiencia"`
	Skills       string  `json:"habilidades,omitempty"`
	Rating       float64 `json:"rating"`
}
