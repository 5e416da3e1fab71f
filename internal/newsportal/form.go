package newsportal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// BadWordsWarning is the form error for a comment with forbidden words.
	BadWordsWarning = "Не ругайтесь!"
)

// BadWords may not appear in comments.
var BadWords = []string{"редиска", "негодяй"}

// ErrInvalidForm is returned when a submitted form does not pass validation.
var ErrInvalidForm = errors.New("invalid form")

var validate = validator.New()

// FormErrors maps a form field name to its messages.
type FormErrors map[string][]string

func (e FormErrors) add(field, message string) {
	e[field] = append(e[field], message)
}

// CommentForm is the form for writing and editing a comment.
type CommentForm struct {
	Text   string     `validate:"required,max=2000"`
	Errors FormErrors `validate:"-"`
}

// NewCommentForm returns a form prefilled with text.
func NewCommentForm(text string) *CommentForm {
	return &CommentForm{Text: text}
}

// Validate checks the form and fills Errors. It reports whether the form is valid.
func (f *CommentForm) Validate() bool {
	f.Errors = FormErrors{}
	f.Text = strings.TrimSpace(f.Text)

	collectErrors(f.Errors, validate.Struct(f), map[string]string{"Text": "text"})

	lower := strings.ToLower(f.Text)
	for _, word := range BadWords {
		if strings.Contains(lower, word) {
			f.Errors.add("text", BadWordsWarning)
			break
		}
	}

	return len(f.Errors) == 0
}

// SignUpForm registers a new user.
type SignUpForm struct {
	Username string     `validate:"required,max=150"`
	Password string     `validate:"required,min=8,max=72"`
	Errors   FormErrors `validate:"-"`
}

func (f *SignUpForm) Validate() bool {
	f.Errors = FormErrors{}
	f.Username = strings.TrimSpace(f.Username)

	collectErrors(f.Errors, validate.Struct(f), map[string]string{
		"Username": "username",
		"Password": "password",
	})

	if strings.ContainsAny(f.Username, " \t\r\n") {
		f.Errors.add("username", "Имя пользователя не может содержать пробелы.")
	}

	return len(f.Errors) == 0
}

// LoginForm holds credentials.
type LoginForm struct {
	Username string
	Password string
}

func collectErrors(dst FormErrors, err error, fields map[string]string) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return
	}

	for _, fe := range verrs {
		name, ok := fields[fe.Field()]
		if !ok {
			name = fe.Field()
		}
		dst.add(name, errorMessage(fe))
	}
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Обязательное поле."
	case "max":
		return fmt.Sprintf("Убедитесь, что это значение содержит не более %s символов.", fe.Param())
	case "min":
		return fmt.Sprintf("Убедитесь, что это значение содержит не менее %s символов.", fe.Param())
	default:
		return "Некорректное значение."
	}
}
