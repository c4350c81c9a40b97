package dto

import "time"

type ChangePlanRequest struct {
	WorkerID string `json:"trabajador_id" validate:"required,uuid4"`
	NewPlan  string `json:"nuevo_plan" validate:"required,is-plan"`
}

type MembershipResponse struct {
	ID         string     `json:"id"`
	WorkerID   string     `json:"trabajador_id"`
	WorkerName string     `json:"trabajador_nombre,omitempty"`
	Plan       string     `json:"plan"`
	State      string     `json:"estado"`
	StartDate  time.Time  `json:"fecha_inicio"`
	EndDate    *time.Time `json:"fecha_fin,omitempty"`
}

type MembershipListResponse struct {
	Memberships []MembershipResponse `json:"membresias"`
	Meta        ListMeta             `json:"meta"`
}
