package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// fieldMessages maps a json field and a failed validation tag to the text
// returned to the client.
type fieldMessages map[string]map[string]string

func (m fieldMessages) lookup(err validator.FieldError) (string, bool) {
	msg, ok := m[err.Field()][err.Tag()]
	return msg, ok
}

// bindJSON binds the body into req. Any decode or validation failure is
// answered with 400; fallback covers failures no message is registered for.
func bindJSON(c *gin.Context, req any, messages fieldMessages, fallback string) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	writeError(c, http.StatusBadRequest, bindErrorMessage(err, messages, fallback))
	return false
}

func bindErrorMessage(err error, messages fieldMessages, fallback string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, verr := range verrs {
			if msg, ok := messages.lookup(verr); ok {
				return msg
			}
		}
	}
	return fallback
}
