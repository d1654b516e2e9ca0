package dto

import "github.com/google/uuid"

// RegisterRequest carries the registration form. Field names mirror the
// public form inputs, including the dashed confirm-password.
type RegisterRequest struct {
	Name            string `json:"name" form:"name" validate:"required"`
	Username        string `json:"username" form:"username" validate:"required"`
	Email           string `json:"email" form:"email" validate:"required"`
	Phone           string `json:"phone" form:"phone" validate:"required"`
	Password        string `json:"password" form:"password" validate:"required"`
	ConfirmPassword string `json:"confirm-password" form:"confirm-password" validate:"required"`
}

type RegisterResponse struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type LoginResponse struct {
	UserId uuid.UUID `json:"user_id"`
}
