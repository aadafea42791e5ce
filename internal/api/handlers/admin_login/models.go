package admin_login

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
}
