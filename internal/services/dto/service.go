package dto

import "time"

type CreateServiceRequest struct {
	Title       string  `json:"titulo" validate:"required,min=3,max=200"`
	Description string  `json:"descripcion" validate:"required,min=10,max=3000"`
	Category    string  `json:"categoria" validate:"required,max=120"`
	Price       float64 `json:"precio" validate:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Title       string  `json:"titulo" validate:"omitempty,min=3,max=200"`
	Description string  `json:"descripcion" validate:"omitempty,min=10,max=3000"`
	Category    string  `json:"categoria" validate:"omitempty,max=120"`
	Price       float64 `json:"precio" validate:"omitempty,gt=0"`
}

type ServiceListQuery struct {
	Category string `form:"categoria"`
	City     string `form:"ciudad"`
	Search   string `form:"q"`
}

type ServiceResponse struct {
	ID                string     `json:"id"`
	WorkerID          string     `json:"trabajador_id"`
	WorkerName        string     `json:"trabajador_nombre,omitempty"`
	WorkerRating      float64    `json:"trabajador_rating,omitempty"`
	Title             string     `json:"titulo"`
	Description       string     `json:"descripcion"`
	Category          string     `json:"categoria"`
	Price             float64    `json:"precio"`
	PhotoURL          string     `json:"foto_url,omitempty"`
	PublicationStatus string     `json:"estado_publicacion"`
	WordsDetected     bool       `json:"palabras_detectadas"`
	PublishedAt       *time.Time `json:"fecha_publicacion,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"servicios"`
	Meta     ListMeta          `json:"meta"`
}
