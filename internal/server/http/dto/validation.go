package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var fieldLabels = map[string]string{
	"Username":   "Username",
	"Email":      "Email",
	"Password":   "Password",
	"Password2":  "Repeat Password",
	"CustomerID": "Customer ID",
}

// Messages converts a form binding error into user facing messages.
func Messages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid form submission."}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		label, ok := fieldLabels[fe.Field()]
		if !ok {
			label = fe.Field()
		}
		messages = append(messages, fmt.Sprintf("%s: %s", label, describe(fe)))
	}
	return messages
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "eqfield":
		return "Field must be equal to password."
	default:
		return "Invalid value."
	}
}
