// ABOUTME: Auth request/response models and the client session
// ABOUTME: Mirrors the login, registration, and password-reset endpoints

package models

// User is the authenticated user's profile.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Session is the client-side authentication state persisted in durable
// storage. A non-expired access token implies the user is authenticated.
type Session struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
	User         *User  `json:"user,omitempty"`
}

// LoginRequest is the POST login/ payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the POST login/ result.
type LoginResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
	User         *User  `json:"user,omitempty"`
}

// RegisterRequest is the POST register/ payload.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// RegisterResponse is the POST register/ result. Verification details
// are present when the server issued an email OTP.
type RegisterResponse struct {
	Message             string `json:"message"`
	User                *User  `json:"user,omitempty"`
	VerificationMessage string `json:"verification_message,omitempty"`
	OTPExpiresInMinutes int    `json:"otp_expires_in_minutes,omitempty"`
}

// VerifyEmailRequest is the POST verify-email/ payload.
type VerifyEmailRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// EmailRequest covers resend-otp/ and send-otp/.
type EmailRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest is the POST verify-otp/ payload (password reset).
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest is the POST reset-password/ payload.
type ResetPasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
