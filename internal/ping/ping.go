// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package ping implements the payloads of the ping endpoint and the rules
// that turn a PingRequest into a PingResponse.
package ping

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

const (
	// DefaultMessage is returned when the request does not provide a message.
	DefaultMessage = "API is responsive"

	// Offset is added to a client provided timestamp. It is a fixed duration
	// in UTC and ignores calendar and DST rules.
	Offset = 5 * 24 * time.Hour

	// MaxYear is the last year an RFC 3339 timestamp can represent.
	MaxYear = 9999
)

var (
	// ErrTrailingData is returned by Decode if the body holds more than one JSON value.
	ErrTrailingData = errors.New("unexpected data after JSON value")

	// ErrOutOfRange is returned by Apply if the moved timestamp can not be
	// encoded as RFC 3339.
	ErrOutOfRange = errors.New("timestamp out of range")
)

// Clock returns the current time.
type Clock func() time.Time

// Response is the JSON body returned by both GET and POST requests.
type Response struct {
	Message         string    `json:"message"`
	AlwaysNull      *string   `json:"alwaysNull"`
	CurrentDateTime time.Time `json:"currentDateTime"`
}

// Request is the optional JSON body of a POST request.
type Request struct {
	MessageOptional *string    `json:"messageOptional"`
	CurrentDateTime *time.Time `json:"currentDateTime"`
}

// NewResponse returns the default response for the given point in time.
func NewResponse(now time.Time) Response {
	return Response{
		Message:         DefaultMessage,
		CurrentDateTime: now.UTC(),
	}
}

// Decode reads a single JSON encoded Request from body. An empty body yields
// an empty Request. Anything but whitespace after the first value is an error.
func Decode(body io.Reader) (Request, error) {
	var req Request
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return Request{}, nil
		}
		return Request{}, err
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Request{}, ErrTrailingData
	}
	return req, nil
}

// Apply builds the response for the request. Every field of the request is
// handled on its own; missing fields keep the defaults of NewResponse.
func (r Request) Apply(now time.Time) (Response, error) {
	resp := NewResponse(now)
	if r.MessageOptional != nil {
		resp.Message = ToASCIIUpper(*r.MessageOptional)
	}
	if r.CurrentDateTime != nil {
		resp.CurrentDateTime = r.CurrentDateTime.UTC().Add(Offset)
		if year := resp.CurrentDateTime.Year(); year > MaxYear {
			return resp, fmt.Errorf("%w: %s plus %s is in year %d", ErrOutOfRange,
				r.CurrentDateTime.Format(time.RFC3339), Offset, year)
		}
	}
	return resp, nil
}

// String satisfies the fmt.Stringer interface and is used for logging.
func (r Request) String() string {
	msg, date := "<nil>", "<nil>"
	if r.MessageOptional != nil {
		msg = fmt.Sprintf("%q", *r.MessageOptional)
	}
	if r.CurrentDateTime != nil {
		date = r.CurrentDateTime.Format(time.RFC3339Nano)
	}
	return fmt.Sprintf("PingRequest{messageOptional: %s, currentDateTime: %s}", msg, date)
}

// ToASCIIUpper maps the ASCII letters a-z to upper case and leaves every
// other byte untouched.
func ToASCIIUpper(s string) string {
	buf := []byte(s)
	for i, c := range buf {
		if c >= 'a' && c <= 'z' {
			buf[i] = c - ('a' - 'A')
		}
	}
	return string(buf)
}
