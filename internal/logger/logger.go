// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package logger

import (
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	IPv4HideMask = 16
	IPv6HideMask = 48

	// ClientIPKey is the attribute key httplog uses for the remote address.
	ClientIPKey = "client.ip"
)

type Logger struct {
	*slog.Logger
}

type Opts struct {
	Format    string
	DontLogIP bool
}

// New returns a Logger that writes to stderr.
func New(level slog.Level, opts Opts) *Logger {
	return NewLogger(level, os.Stderr, opts)
}

// NewLogger returns a Logger that writes to output. The format is either
// "text" or "json"; anything else falls back to json.
func NewLogger(level slog.Level, output io.Writer, opts Opts) *Logger {
	handlerOpts := &slog.HandlerOptions{Level: level}
	if opts.DontLogIP {
		handlerOpts.ReplaceAttr = maskClientIP
	}

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "text":
		handler = slog.NewTextHandler(output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(output, handlerOpts)
	}
	return &Logger{slog.New(handler)}
}

// With returns a Logger that includes the given attributes in each record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{l.Logger.With(args...)}
}

func Err(err error) slog.Attr {
	return slog.Any("error", err)
}

func RequestID(r *http.Request) slog.Attr {
	return slog.String("request_id", middleware.GetReqID(r.Context()))
}

func maskClientIP(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key != ClientIPKey {
		return attr
	}
	ip := net.ParseIP(attr.Value.String())
	switch {
	case ip.To4() != nil:
		ip = ip.Mask(net.CIDRMask(IPv4HideMask, 32))
	case ip.To16() != nil:
		ip = ip.Mask(net.CIDRMask(IPv6HideMask, 128))
	default:
		ip = net.IPv4zero
	}
	return slog.String(ClientIPKey, ip.String())
}
