package auth

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type GoogleSignInRequest struct {
	Credential string `json:"credential"`
}

// LoginResponse mirrors the historical wire shape, _id field included.
type LoginResponse struct {
	ID           int64  `json:"_id"`
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
