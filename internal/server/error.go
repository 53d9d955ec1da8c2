// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

// IOError is returned by Start when the listener can not be bound or the
// server stops serving unexpectedly.
type IOError struct {
	Op   string
	Addr string
	Err  error
}

// Error satisfies the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("IOError: %s %s: %s", e.Op, e.Addr, e.Err)
}

// Unwrap returns the underlying network error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// ErrResponse is the JSON body of a failed request.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string   `json:"status"`           // user-level status message
	ErrorText  []string `json:"errors,omitempty"` // application-level error message, for debugging
}

// Render satisfies the go-chi render.Renderer interface.
func (e *ErrResponse) Render(_ http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// ErrBadRequest returns a renderer for a 400 response listing every line of err.
func ErrBadRequest(err error) render.Renderer {
	return jsonError(http.StatusBadRequest, err)
}

func jsonError(code int, err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: code,
		StatusText:     http.StatusText(code),
		ErrorText:      strings.Split(err.Error(), "\n"),
	}
}
