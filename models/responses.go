package models

// TokenResponse is the payload returned by a successful login.
// TokenType is always "bearer"; clients present AccessToken in the
// Authorization header of subsequent requests.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is the externally visible representation of an account.
// It deliberately has no credential field: hashed passwords never leave
// the server, whatever the code path.
type UserResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Disabled bool    `json:"disabled"`
}

// NewUserResponse builds a UserResponse from a persisted User.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Disabled: u.Disabled,
	}
}

// SignupRequest is the JSON body accepted by the registration endpoint.
// Password is the only write-only field; it is hashed before persistence
// and never echoed back.
type SignupRequest struct {
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Password string  `json:"password"`
}

// LoginRequest carries the credentials presented at the token endpoint.
// The endpoint also accepts the equivalent urlencoded form fields.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
