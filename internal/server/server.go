// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wneessen/chronoping/internal/config"
	"github.com/wneessen/chronoping/internal/logger"
	"github.com/wneessen/chronoping/internal/ping"
)

const shutdownTimeout = time.Second * 5

type Server struct {
	clock   ping.Clock
	config  *config.Config
	httpSrv *http.Server
	log     *logger.Logger
	mux     *chi.Mux
	version string
}

// New returns a new server instance with all routes registered
func New(conf *config.Config, log *logger.Logger, version string) *Server {
	mux := chi.NewMux()
	listenAddr := net.JoinHostPort(conf.Server.BindAddress, conf.Server.BindPort)

	server := &Server{
		clock:  time.Now,
		config: conf,
		httpSrv: &http.Server{
			Addr:              listenAddr,
			Handler:           mux,
			ReadTimeout:       conf.Server.Timeout,
			ReadHeaderTimeout: conf.Server.Timeout,
			WriteTimeout:      conf.Server.Timeout,
			IdleTimeout:       conf.Server.Timeout,
		},
		log:     log,
		mux:     mux,
		version: version,
	}
	server.routes()

	return server
}

// Start binds the listener and serves requests until the context is canceled.
// A failure to bind or to serve is returned as *IOError.
func (s *Server) Start(ctx context.Context) error {
	ctxServer, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	listener, err := net.Listen("tcp", s.httpSrv.Addr)
	if err != nil {
		return &IOError{Op: "listen", Addr: s.httpSrv.Addr, Err: err}
	}
	s.log.Info("starting chronoping http server", slog.String("listen_addr", listener.Addr().String()))

	serveErr := make(chan error, 1)
	go func() {
		if err := s.httpSrv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		cancelServer()
	}()
	<-ctxServer.Done()

	select {
	case err = <-serveErr:
		return &IOError{Op: "serve", Addr: listener.Addr().String(), Err: err}
	default:
	}

	s.log.Info("shutting down chronoping http server")
	ctxShutdown, cancelShutdown := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancelShutdown()
	if err = s.httpSrv.Shutdown(ctxShutdown); err != nil {
		s.log.Error("failed to shut down http server gracefully", logger.Err(err))
	}

	return nil
}
