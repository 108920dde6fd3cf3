package dto

// LoginRequest defines data for a username/password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token    string           `json:"token"`
	Employee EmployeeResponse `json:"employee"`
}

// GoogleIDTokenRequest defines data for a Google ID token sign-in.
type GoogleIDTokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
