package common

// SuccessResponse is the envelope for successful responses
type SuccessResponse struct {
	Code    int         `json:"code,omitempty" example:"200"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for failed responses
type ErrorResponse struct {
	Code    interface{} `json:"code,omitempty" swaggertype:"string" example:"NOT_FOUND"`
	Message string      `json:"message,omitempty" example:"Meeting not found"`
	Info    string      `json:"info,omitempty"`
}

// MessageResponse carries a human readable confirmation
type MessageResponse struct {
	Message string `json:"message" example:"Action deleted"`
}

// BannerResponse is returned by the service root
type BannerResponse struct {
	Message string `json:"message" example:"Meeting Action Tracker is running"`
}

// HealthResponse reports service and database health
type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	Database    string `json:"database" example:"ok"`
	Environment string `json:"environment" example:"development"`
}
