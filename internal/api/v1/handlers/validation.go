package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Create and PUT bodies must carry every writable field; PATCH bodies may carry any subset.
// Pointers distinguish an absent field from its zero value.

type cityRequest struct {
	Name      *string  `json:"name" validate:"required,min=1,max=100"`
	Country   *string  `json:"country" validate:"required,min=1,max=100"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

type cityPatchRequest struct {
	Name      *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Country   *string  `json:"country" validate:"omitempty,min=1,max=100"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type weatherRecordRequest struct {
	City        *uint      `json:"city" validate:"required"`
	Temperature *float64   `json:"temperature" validate:"required"`
	FeelsLike   *float64   `json:"feels_like" validate:"required"`
	Humidity    *int       `json:"humidity" validate:"required"`
	Pressure    *int       `json:"pressure" validate:"required"`
	WindSpeed   *float64   `json:"wind_speed" validate:"required"`
	Description *string    `json:"description" validate:"required,min=1,max=200"`
	RecordedAt  *time.Time `json:"recorded_at"`
}

type weatherRecordPatchRequest struct {
	City        *uint      `json:"city"`
	Temperature *float64   `json:"temperature"`
	FeelsLike   *float64   `json:"feels_like"`
	Humidity    *int       `json:"humidity"`
	Pressure    *int       `json:"pressure"`
	WindSpeed   *float64   `json:"wind_speed"`
	Description *string    `json:"description" validate:"omitempty,min=1,max=200"`
	RecordedAt  *time.Time `json:"recorded_at"`
}

// decodeAndValidate reads a JSON body into dst and validates it. On failure it writes the 400
// response itself and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var timeErr *time.ParseError
		switch {
		case errors.As(err, &typeErr) && typeErr.Field != "":
			respondWithValidationError(w, map[string]string{typeErr.Field: typeMessage(typeErr.Type)})
		case errors.As(err, &timeErr):
			respondWithValidationError(w, map[string]string{
				"recorded_at": "Datetime has wrong format. Use RFC 3339, e.g. 2006-01-02T15:04:05Z.",
			})
		case errors.Is(err, io.EOF):
			respondWithError(w, http.StatusBadRequest, "Request body is empty.")
		default:
			respondWithError(w, http.StatusBadRequest, "JSON parse error - "+err.Error())
		}
		return false
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		respondWithError(w, http.StatusBadRequest, "JSON parse error - request body must contain a single JSON object")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return false
		}

		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		respondWithValidationError(w, fields)
		return false
	}

	return true
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		if fe.Param() == "1" {
			return "This field may not be blank."
		}
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	default:
		return "Invalid value."
	}
}

func typeMessage(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.Float32, reflect.Float64:
		return "A valid number is required."
	case reflect.String:
		return "Not a valid string."
	default:
		return "Invalid value."
	}
}
