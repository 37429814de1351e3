package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FormStateDTO estado del modal: closed, creating o editing (con targetId).
type FormStateDTO struct {
	Mode     string `json:"mode"`
	TargetID string `json:"targetId,omitempty"`
}

// Option opción de un selector (id + etiqueta visible).
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
