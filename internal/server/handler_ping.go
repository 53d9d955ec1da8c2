// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/wneessen/chronoping/internal/logger"
	"github.com/wneessen/chronoping/internal/ping"
)

// HandlerAPIPingGet responds with the default ping response.
func (s *Server) HandlerAPIPingGet(w http.ResponseWriter, r *http.Request) {
	s.log.Info("get ping response", logger.RequestID(r))

	render.Status(r, http.StatusOK)
	render.JSON(w, r, ping.NewResponse(s.clock()))
}

// HandlerAPIPingPost decodes an optional ping request and responds with the
// transformed ping response. An empty body is treated like an empty object.
func (s *Server) HandlerAPIPingPost(w http.ResponseWriter, r *http.Request) {
	req, err := ping.Decode(r.Body)
	if err != nil {
		s.log.Warn("failed to decode ping request", logger.Err(err), logger.RequestID(r))
		s.renderBadRequest(w, r, fmt.Errorf("failed to decode ping request: %w", err))
		return
	}
	s.log.Info("post ping response", slog.String("request", req.String()), logger.RequestID(r))

	resp, err := req.Apply(s.clock())
	if err != nil {
		s.log.Warn("failed to apply ping request", logger.Err(err), logger.RequestID(r))
		s.renderBadRequest(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (s *Server) renderBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	if err = render.Render(w, r, ErrBadRequest(err)); err != nil {
		s.log.Error("failed to render error response", logger.Err(err), logger.RequestID(r))
	}
}
