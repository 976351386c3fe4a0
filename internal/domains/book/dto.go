package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AddBookRequest - Mutation addBook
// Author is a name, not an id: unknown names auto-provision the author.
type AddBookRequest struct {
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	Published int      `json:"published"`
	Genres    []string `json:"genres"`
}

func (r AddBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(MinTitleLength, 255).Error("book title must be at least 3 characters long"),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
		),
	)
}
