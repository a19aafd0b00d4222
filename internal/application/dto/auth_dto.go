package dto

// LoginRequest credenciales del login de cortesía.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de sesión.
type LoginResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	ExpiresIn int    `json:"expires_in"` // segundos
}
