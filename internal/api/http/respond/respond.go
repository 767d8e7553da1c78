// Package respond writes API error bodies and decodes request bodies for the
// entity handlers.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/GoSim-25-26J-441/jobly-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/logging"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

// jsonTagName makes validation errors name fields the way clients send them.
func jsonTagName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Error writes err as {"error": {"message", "status"}} and aborts the chain.
// Unclassified errors are logged and reported without detail.
func Error(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logging.New(c.Request.Context()).LogError(c.FullPath(), err)
		message = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"message": message, "status": status}})
}

// BindJSON binds a create body using its binding tags.
func BindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return bindError(err)
	}
	return nil
}

// DecodeStrict decodes an update body, rejecting fields dst does not declare,
// then validates it with the binding tags. An empty body decodes to the zero
// value.
func DecodeStrict(c *gin.Context, dst any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return bindError(err)
	}
	if err := binding.Validator.ValidateStruct(dst); err != nil {
		return bindError(err)
	}
	return nil
}

func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		return apperr.InvalidRequest("%s", strings.Join(msgs, "; "))
	}

	if strings.HasPrefix(err.Error(), "json: unknown field ") {
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return apperr.InvalidRequest("%s is not allowed", field)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperr.InvalidRequest("%s must be of type %s", typeErr.Field, typeErr.Type)
	}

	if errors.Is(err, io.EOF) {
		return apperr.InvalidRequest("request body is required")
	}
	return apperr.InvalidRequest("invalid body: %v", err)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a URL", fe.Field())
	case "lowercase":
		return fmt.Sprintf("%s must be lowercase", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
