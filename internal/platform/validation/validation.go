// Package validation converts binding failures into the per-field message
// set returned to API clients. Each field+rule pair maps to exactly one
// fixed, human-readable message.
package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Fixed messages for rules that are checked outside the binding layer.
const (
	// MsgEmailTaken is the uniqueness violation message for the email field.
	MsgEmailTaken = "Email already taken, please try with another email."

	// MsgMalformedBody is used when the request body cannot be parsed at all.
	MsgMalformedBody = "The request body could not be parsed."
)

// fieldNames maps struct field names to their JSON names.
var fieldNames = map[string]string{
	"Name":        "name",
	"Email":       "email",
	"Password":    "password",
	"PhoneNumber": "phone_number",
}

// fieldOrder fixes the order in which field errors are reported.
var fieldOrder = []string{"name", "email", "password", "phone_number"}

// messages maps "<StructField>.<rule>" to its fixed message.
var messages = map[string]string{
	"Name.required":        "Please enter your name.",
	"Name.min":             "Name must be at least 5 characters long.",
	"Name.max":             "Name must not exceed 150 characters.",
	"Email.required":       "Please enter your email address.",
	"Email.email":          "Please enter a valid email address.",
	"Password.required":    "Please enter your password.",
	"Password.min":         "Password must be at least 5 characters long.",
	"Password.max":         "Password must not exceed 25 characters.",
	"PhoneNumber.required": "Please enter your phone number.",
	"PhoneNumber.len":      "Phone number must be exactly 10 digits long.",
	"PhoneNumber.numeric":  "Phone number must be exactly 10 digits long.",
}

// Errors is a mapping from JSON field name to its ordered violation messages.
type Errors map[string][]string

// Convert translates a gin binding error into per-field messages.
// All simultaneous violations surface together, not just the first.
func Convert(err error) Errors {
	out := Errors{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// JSON syntax or type errors never reach the validator
		out["body"] = []string{MsgMalformedBody}
		return out
	}

	for _, fe := range verrs {
		field, ok := fieldNames[fe.Field()]
		if !ok {
			field = fe.Field()
		}
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = "The " + field + " field is invalid."
		}
		out[field] = append(out[field], msg)
	}
	return out
}

// EmailTaken builds the error set for a uniqueness violation on the email field.
func EmailTaken() Errors {
	return Errors{"email": {MsgEmailTaken}}
}

// First returns the first message in declared field order.
// It gives the envelope a deterministic headline message.
func (e Errors) First() string {
	for _, field := range fieldOrder {
		if msgs := e[field]; len(msgs) > 0 {
			return msgs[0]
		}
	}
	for _, msgs := range e {
		if len(msgs) > 0 {
			return msgs[0]
		}
	}
	return ""
}
