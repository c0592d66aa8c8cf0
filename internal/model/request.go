package model

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AccountUpdateRequest carries the same fields as AccountRequest. Its rule
// set leaves the strength policy to the service, which applies it only when
// the secret actually changes.
type AccountUpdateRequest AccountRequest

// PasswordChange is validated whenever an account gets a new secret.
type PasswordChange struct {
	Password string
}

type VehicleRequest struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}
