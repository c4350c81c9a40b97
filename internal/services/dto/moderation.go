package dto

import "time"

type ModerationResponse struct {
	ID            string     `json:"id"`
	ServiceID     string     `json:"servicio_id"`
	ServiceTitle  string     `json:"servicio_titulo,omitempty"`
	WorkerName    string     `json:"trabajador_nombre,omitempty"`
	DetectedWords string     `json:"palabras_detectadas"`
	Status        string     `json:"estado"`
	ReviewedByID  *string    `json:"revisado_por_id,omitempty"`
	ReviewedAt    *time.Time `json:"revisado_en,omitempty"`
	CreatedAt     time.Time  `json:"fecha"`
}

type ModerationListResponse struct {
	Records []ModerationResponse `json:"registros"`
	Meta    ListMeta             `json:"meta"`
}
