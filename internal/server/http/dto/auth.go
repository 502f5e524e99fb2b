package dto

// LoginRequest describes staff credentials payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the session and CSRF tokens after login.
type LoginResponse struct {
	Token     string `json:"token"`
	CSRFToken string `json:"csrf_token"`
}
