// Package errs provides the error types the node's web api hands back to
// clients.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Response is the form used for API responses from failures in the API.
type Response struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Trusted is an error whose message is safe to show a client, along with
// the status code to answer with.
type Trusted struct {
	Err    error
	Status int
}

// NewTrusted marks the error as safe to show a client.
func NewTrusted(err error, status int) error {
	return &Trusted{Err: err, Status: status}
}

// BadRequest marks the error as a client mistake.
func BadRequest(err error) error {
	return NewTrusted(err, http.StatusBadRequest)
}

// Error implements the error interface.
func (te *Trusted) Error() string {
	return fmt.Sprintf("%d: %s", te.Status, te.Err)
}

// Unwrap provides access to the wrapped error.
func (te *Trusted) Unwrap() error {
	return te.Err
}

// Response builds the body sent to the client.
func (te *Trusted) Response() Response {
	return Response{Error: te.Err.Error()}
}

// AsTrusted returns the trusted error in the chain, if there is one.
func AsTrusted(err error) (*Trusted, bool) {
	var te *Trusted
	if !errors.As(err, &te) {
		return nil, false
	}
	return te, true
}
