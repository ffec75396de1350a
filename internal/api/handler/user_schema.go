package handler

// Field bounds follow the storage schema: anything passing here still has the
// column CHECK constraints behind it.

type createUserRequest struct {
	Username    string `json:"username"     validate:"required,min=3,max=20"`
	Email       string `json:"email"        validate:"required,email,min=10,max=50"`
	FirstName   string `json:"first_name"   validate:"required,min=2,max=15"`
	LastName    string `json:"last_name"    validate:"required,min=2,max=15"`
	Password    string `json:"password"     validate:"required,min=8,max=20"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=15"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

type changePasswordRequest struct {
	CurrentPassword   string `json:"current_password"    validate:"required"`
	NewPassword       string `json:"new_password"        validate:"required,min=8,max=20"`
	NewPasswordRetype string `json:"new_password_retype" validate:"required,min=8,max=20"`
}

// updateProfileRequest carries optional fields; absent fields are left as is.
type updateProfileRequest struct {
	Username    *string `json:"username"     validate:"omitempty,min=3,max=20"`
	Email       *string `json:"email"        validate:"omitempty,email,min=10,max=50"`
	FirstName   *string `json:"first_name"   validate:"omitempty,min=2,max=15"`
	LastName    *string `json:"last_name"    validate:"omitempty,min=2,max=15"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=10,max=15"`
}

type roleRequestRequest struct {
	NewRoleRequested string `json:"new_role_requested" validate:"required,min=3,max=20"`
}

// messageResponse is the confirmation envelope for workflow outcomes.
type messageResponse struct {
	Message string `json:"message"`
}
