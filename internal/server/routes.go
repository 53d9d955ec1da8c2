// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package server

import (
	"log/slog"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
)

func (s *Server) routes() {
	logHandler := httplog.RequestLogger(
		s.log.With(slog.String("service", "http")).Logger,
		&httplog.Options{
			Level:         s.config.Log.Level,
			Schema:        logSchema(s.config.Log.Schema),
			RecoverPanics: true,
		},
	)

	// Register middleware
	s.mux.Use(middleware.RequestID)
	s.mux.Use(middleware.RealIP)
	s.mux.Use(middleware.StripSlashes)
	s.mux.Use(middleware.Compress(5))
	s.mux.Use(s.serverHeader)
	s.mux.Use(logHandler)

	// Register routes
	s.mux.Route("/ping", func(r chi.Router) {
		r.Get("/", s.HandlerAPIPingGet)
		r.Post("/", s.HandlerAPIPingPost)

		// Route of the former chrono based service
		r.Get("/chrono/rfc3339", s.HandlerAPIPingGet)
		r.Post("/chrono/rfc3339", s.HandlerAPIPingPost)
	})
}

func logSchema(name string) *httplog.Schema {
	switch strings.ToLower(name) {
	case "otel":
		return httplog.SchemaOTEL
	case "gcp":
		return httplog.SchemaGCP
	default:
		return httplog.SchemaECS
	}
}
