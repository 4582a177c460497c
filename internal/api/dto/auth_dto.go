package dto

// AdminLoginRequest payload for admin login.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DriverLoginRequest payload for driver login.
type DriverLoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginResponse mirrors the response contract of the login endpoints.
// AdminID and DriverID are mutually exclusive, keyed by UserType.
type LoginResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token,omitempty"`
	UserType string `json:"userType,omitempty"`
	AdminID  string `json:"adminId,omitempty"`
	DriverID string `json:"driverId,omitempty"`
	Message  string `json:"message"`
}

// VerifyResponse is returned by the bearer-token verification endpoint.
type VerifyResponse struct {
	Valid    bool   `json:"valid"`
	UserType string `json:"userType,omitempty"`
	AdminID  string `json:"adminId,omitempty"`
	DriverID string `json:"driverId,omitempty"`
}

// LogoutRequest payload for logout.
type LogoutRequest struct {
	Token string `json:"token"`
}

// ChangePasswordRequest payload for admin password rotation.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
