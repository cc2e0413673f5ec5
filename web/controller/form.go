package controller

import (
	"errors"
	"fmt"
	"strings"

	"smoothblog/web/session"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RegisterForm carries the registration fields. Field bounds mirror the
// database columns.
type RegisterForm struct {
	Email    string `form:"email" binding:"required,email,max=320"`
	Username string `form:"username" binding:"required,max=80"`
	Password string `form:"password" binding:"required,eqfield=Confirm"`
	Confirm  string `form:"confirm" binding:"required"`
}

// LoginForm carries the login fields.
type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	Remember bool   `form:"remember"`
}

// CreateForm carries the post creation fields.
type CreateForm struct {
	Title   string `form:"title" binding:"required,max=500"`
	Content string `form:"content" binding:"required"`
}

// fieldErrorMessage maps a validator failure to the message shown to the user.
// Validation stops at the first failing rule per field, so each field gets at
// most one message.
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "eqfield":
		return fmt.Sprintf("Field must be equal to %s.", strings.ToLower(fe.Param()))
	default:
		return "Invalid value."
	}
}

// flashFormErrors turns a binding error into per-field flash messages,
// accumulated across fields.
func flashFormErrors(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		session.Flash(c, "Invalid form data.", "danger")
		return
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		session.Flash(c, fmt.Sprintf("%s: %s", field, fieldErrorMessage(fe)), "danger")
	}
}
