package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/mindease/mindease/internal"
	"github.com/mindease/mindease/internal/storage"
)

type LoginRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func ValidateLoginRequest(body *LoginRequest) error {
	if err := validate.Struct(body); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return &internal.ValidationError{Field: errs[0].Field(), Reason: errs[0].Tag()}
		}
		return err
	}
	return nil
}

// Login resolves the user for an email, creating the record on first contact.
// Idempotent: two calls with the same email yield the same record.
func Login(ctx context.Context, repo storage.UserRepository, body *LoginRequest) (*internal.User, error) {
	return repo.LoginUser(ctx, body.Name, body.Email)
}

type UpdateUserRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Bio    string `json:"bio,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

func ValidateUpdateUserRequest(body *UpdateUserRequest) error {
	if err := validate.Struct(body); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return &internal.ValidationError{Field: errs[0].Field(), Reason: errs[0].Tag()}
		}
		return err
	}
	return nil
}

// UpdateUser full-replaces the mutable profile fields keyed by email.
func UpdateUser(ctx context.Context, repo storage.UserRepository, body *UpdateUserRequest) (*internal.User, error) {
	return repo.UpdateUser(ctx, &internal.User{
		Name:   body.Name,
		Email:  body.Email,
		Bio:    body.Bio,
		Avatar: body.Avatar,
	})
}
