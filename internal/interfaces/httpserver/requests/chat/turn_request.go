package chatrequests

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TurnRequest carries one submitted user message. Blank submissions are
// rejected here; the transcript controller itself accepts any text.
type TurnRequest struct {
	Message string `json:"message" form:"message" binding:"required,notblank,max=8000"`
}

// RegisterValidations installs the custom binding validations used by
// the chat requests. Must be called once during server setup.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("notblank", notBlank)
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
