package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

var ErrInternal = fmt.Errorf("internal error")
var ErrNotFound = fmt.Errorf("not found")
var ErrRequest = fmt.Errorf("request error")
var ErrBadRequest = fmt.Errorf("bad request")
var ErrBadResponse = fmt.Errorf("bad response")
var ErrUnauthorized = fmt.Errorf("unauthorized")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

func NewBadRequestError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrBadRequest,
	}
}

func NewNotFoundError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNotFound,
	}
}

func NewUnauthorizedError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrUnauthorized,
	}
}

// ProblemDetails is the RFC 7807 body that library sources and this service
// use to report failures
type ProblemDetails struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status,omitempty"`
	Detail string `json:"detail,omitempty"`
}

const (
	BadRequestType   string = "https://diwise.io/library/errors/BadRequest"
	NotFoundType     string = "https://diwise.io/library/errors/NotFound"
	InternalType     string = "https://diwise.io/library/errors/InternalError"
	UnauthorizedType string = "https://diwise.io/library/errors/Unauthorized"
)

func NewErrorFromProblemReport(code int, contentType string, body []byte) error {
	report := &ProblemDetails{}

	err := json.Unmarshal(body, report)
	if err != nil {
		if code == http.StatusNotFound {
			return NewNotFoundError("not found")
		}
		return fmt.Errorf("failed to process problem report from library source: %s (%w)", err.Error(), ErrBadResponse)
	}

	if code == http.StatusNotFound || report.Type == NotFoundType {
		return NewNotFoundError(report.Detail)
	}

	if code == http.StatusBadRequest || report.Type == BadRequestType {
		return NewBadRequestError(report.Detail)
	}

	if code == http.StatusUnauthorized || code == http.StatusForbidden || report.Type == UnauthorizedType {
		return NewUnauthorizedError(report.Detail)
	}

	return fmt.Errorf("[error: %d] unknown problem report of type \"%s\" with detail \"%s\" received (%w)", code, report.Type, report.Detail, ErrInternal)
}

func ReportProblem(w http.ResponseWriter, status int, problemType, title, detail string) {
	pd := ProblemDetails{
		Type:   problemType,
		Title:  title,
		Status: status,
		Detail: detail,
	}

	body, _ := json.Marshal(pd)

	w.Header().Add("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	w.Write(body)
}

func ReportBadRequest(w http.ResponseWriter, detail string) {
	ReportProblem(w, http.StatusBadRequest, BadRequestType, "Bad Request", detail)
}

func ReportNotFound(w http.ResponseWriter, detail string) {
	ReportProblem(w, http.StatusNotFound, NotFoundType, "Not Found", detail)
}

func ReportInternalError(w http.ResponseWriter, detail string) {
	ReportProblem(w, http.StatusInternalServerError, InternalType, "Internal Error", detail)
}
