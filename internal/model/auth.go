package model

// LoginRequest is the request body for user login.
// All fields are required; email must be syntactically valid.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
}

// AuthResponse is the envelope returned by login and register.
// Exactly one of the success/failure shapes is populated: Token and User
// are present only when Success is true, Message only when it is false.
type AuthResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token,omitempty"`
	User    *PublicUser `json:"user,omitempty"`
	Message string      `json:"message,omitempty"`
}

// CreditsResponse is returned by the credit balance endpoint.
type CreditsResponse struct {
	Success bool      `json:"success"`
	Credits int       `json:"credits"`
	User    *UserName `json:"user"`
}

// UserName carries just the display name for the credits endpoint.
type UserName struct {
	Name string `json:"name"`
}

// GenerateRequest is the request body for image generation.
type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GenerateResponse is returned by the image generation endpoint.
type GenerateResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	CreditBalance int    `json:"creditBalance"`
	ResultImage   string `json:"resultImage,omitempty"`
}
