package problemdetails

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-kratos/kratos/v2/errors"
)

const ContentType = "application/problem+json"

const (
	TypeInvalidParameter = "invalid-parameter"
	TypeNotFound         = "not-found"
	TypeInternalError    = "internal-error"
	TypeValidationError  = "validation-error"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ProblemDetail struct {
	Type   string       `json:"type"`
	Title  string       `json:"title"`
	Status int          `json:"status"`
	Detail string       `json:"detail"`
	Code   string       `json:"code,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

func New(status int, problemType, title, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   fmt.Sprintf("https://api.example.com/problems/%s", problemType),
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

func NewValidation(errors []FieldError) *ProblemDetail {
	return &ProblemDetail{
		Type:   fmt.Sprintf("https://api.example.com/problems/%s", TypeValidationError),
		Title:  "Validation Failed",
		Status: http.StatusBadRequest,
		Detail: "Request validation failed",
		Errors: errors,
	}
}

// FromError converts err into a problem. Kratos errors keep their status and
// reason; anything else becomes an opaque internal error. A "field"
// metadata entry turns a 400 into a validation problem.
func FromError(err error) *ProblemDetail {
	se := errors.FromError(err)
	status := int(se.Code)

	var problem *ProblemDetail
	switch {
	case status == http.StatusBadRequest && se.Metadata["field"] != "":
		problem = NewValidation([]FieldError{{Field: se.Metadata["field"], Message: se.Message}})
	case status == http.StatusBadRequest:
		problem = New(status, TypeInvalidParameter, "Bad Request", se.Message)
	case status == http.StatusNotFound:
		problem = New(status, TypeNotFound, "Not Found", se.Message)
	case status >= http.StatusInternalServerError && se.Reason == errors.UnknownReason:
		problem = New(status, TypeInternalError, "Internal Error", "An unexpected error occurred")
	case status >= http.StatusInternalServerError:
		problem = New(status, TypeInternalError, "Internal Error", se.Message)
	default:
		problem = New(status, se.Reason, http.StatusText(status), se.Message)
	}
	problem.Code = se.Reason
	return problem
}

// Write writes problem as an RFC 7807 response.
func Write(w http.ResponseWriter, problem *ProblemDetail) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(problem.Status)
	json.NewEncoder(w).Encode(problem)
}

// ErrorEncoder is a Kratos HTTP error encoder producing problem details.
func ErrorEncoder(w http.ResponseWriter, _ *http.Request, err error) {
	Write(w, FromError(err))
}
