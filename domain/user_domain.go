package domain

import "errors"

var (
	MessageSuccessLogin   = "login success"
	MessageSuccessGetUser = "success get user"

	MessageFailedLogin   = "failed to login"
	MessageFailedGetUser = "failed to get user"

	ErrUserNotFound       = &NotFoundError{Resource: "user"}
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required,max=64"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UserResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}

	// Identity is the caller an operation is attributed to.
	Identity struct {
		UserID string
		Role   string
	}
)

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
