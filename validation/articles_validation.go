package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents custom validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation errors: " + strings.Join(e.Errors, ", ")
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ArticleInput is the create-article request payload.
type ArticleInput struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// ValidateArticle trims both fields in place and checks that they satisfy
// the article constraints: title and content non-empty after trimming,
// title at most 200 characters.
func ValidateArticle(input *ArticleInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)

	var validationErrors []string

	err := validate.Struct(input)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s: %s", err.Field(), err.Tag()))
		}
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}
