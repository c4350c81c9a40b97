package dto

type CreateAvailabilityRequest struct {
	Day       string `json:"dia" validate:"required,is-week-day"`
	StartTime string `json:"hora_inicio" validate:"required,is-time-of-day"`
	EndTime   string `json:"hora_fin" validate:"required,is-time-of-day"`
}

type UpdateAvailabilityRequest struct {
	Day       string `json:"dia" validate:"required,is-week-day"`
	StartTime string `json:"hora_inicio" validate:"required,is-time-of-day"`
	EndTime   string `json:"hora_fin" validate:"required,is-time-of-day"`
}

type AvailabilityResponse struct {
	ID        string `json:"id"`
	WorkerID  string `json:"trabajador_id"`
	Day       string `json:"dia"`
	StartTime string `json:"hora_inicio"`
	EndTime   string `json:"hora_fin"`
}
