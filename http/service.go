// Package http provides a static file server for the working directory. Every
// response, errors included, allows any origin so pages served from another
// port can fetch the files.
package http

import (
	"errors"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Service provides HTTP service.
type Service struct {
	addr string
	ln   net.Listener

	fs   afero.Fs
	root string

	log *log.Entry
}

// NewService returns a service serving root of fs on addr. It does not
// listen until Start is called.
func NewService(logger *log.Logger, addr string, fs afero.Fs, root string) *Service {
	return &Service{
		addr: addr,
		fs:   fs,
		root: root,
		log:  logger.WithField("component", "http"),
	}
}

// Handler returns the request handler: a file server wrapped with request
// logging and the CORS header.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.withRequestLog)
	r.Use(withCORS)
	r.Handle("/*", http.FileServer(afero.NewHttpFs(s.fs).Dir(s.root)))
	return r
}

// Start binds the listener and serves in the background.
func (s *Service) Start() error {
	server := http.Server{
		Handler: s.Handler(),
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		err := server.Serve(s.ln)
		if err != nil && !errors.Is(err, net.ErrClosed) {
			s.log.Errorf("HTTP serve: %s", err)
		}
	}()

	s.log.Infof("Serving %s on %s", s.root, s.ln.Addr())
	return nil
}

// Close closes the listener. In-flight requests are not drained. Closing a
// service that is not listening is a no-op.
func (s *Service) Close() error {
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}

// Addr returns the address on which the Service is listening, or nil before
// a successful Start.
func (s *Service) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}
