package contact

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/retropixel/storefront/internal/sanitize"
	"github.com/retropixel/storefront/pkg/errors"
)

const maxMessageLength = 2000

var phonePattern = regexp.MustCompile(`^[+]?[\d\s\-\(\)]{9,}$`)

// Form is a contact form submission
type Form struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
}

// Message is a validated form ready to relay
type Message struct {
	Form
	ReceivedAt time.Time `json:"received_at"`
}

// field -> tag -> user-facing message
var messages = map[string]map[string]string{
	"Name": {
		"required": "name is required",
		"min":      "name must be at least 2 characters",
	},
	"Email": {
		"required": "email is required",
		"email":    "email is not valid",
	},
	"Phone": {
		"phone": "phone number is not valid",
	},
	"Subject": {
		"required": "subject is required",
	},
	"Message": {
		"required": "message is required",
		"min":      "message must be at least 10 characters",
	},
}

var jsonNames = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Phone":   "phone",
	"Subject": "subject",
	"Message": "message",
}

type Validator struct {
	validate *validator.Validate
}

// NewValidator registers the phone rule on a fresh validator
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Sanitize strips markup and bounds the length of every field
func (f Form) Sanitize() Form {
	return Form{
		Name:    sanitize.Input(f.Name, sanitize.DefaultMaxLength),
		Email:   sanitize.Input(f.Email, sanitize.DefaultMaxLength),
		Phone:   sanitize.Input(f.Phone, sanitize.DefaultMaxLength),
		Subject: sanitize.Input(f.Subject, sanitize.DefaultMaxLength),
		Message: sanitize.Input(f.Message, maxMessageLength),
	}
}

// Validate sanitizes f and reports every failing field at once
func (v *Validator) Validate(f Form) (Form, error) {
	f = f.Sanitize()

	err := v.validate.Struct(f)
	if err == nil {
		return f, nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return f, err
	}

	out := &errors.ErrValidation{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		msg := messages[fe.Field()][fe.Tag()]
		if msg == "" {
			msg = "is not valid"
		}
		out.Fields[jsonNames[fe.Field()]] = msg
	}
	return f, out
}
