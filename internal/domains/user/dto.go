package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateUserRequest - Mutation createUser
type CreateUserRequest struct {
	Username      string `json:"username"`
	FavoriteGenre string `json:"favorite_genre"`
	Password      string `json:"password"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.FavoriteGenre,
			validation.Required.Error("favorite genre is required"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
	)
}

// LoginRequest - Mutation login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}
