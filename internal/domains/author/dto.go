package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// EditAuthorRequest - Mutation editAuthor
type EditAuthorRequest struct {
	Name      string `json:"name"`
	SetBornTo int    `json:"set_born_to"`
}

func (r EditAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("author name is required"),
		),
		validation.Field(&r.SetBornTo,
			validation.Min(0).Error("year of birth cannot be negative"),
		),
	)
}
