package web

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"

	"github.com/RicTBest/paydaysite-sub000/controller"
)

type Server struct {
	server *http.Server
	log    *logrus.Logger
}

// AdminCreds guards the mutating endpoints.
type AdminCreds struct {
	User     string
	Password string
}

func NewServer(port int, ctrl controller.C, creds AdminCreds, log *logrus.Logger) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render, creds)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
		log: log,
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			s.log.WithError(err).Fatal("fatal error shutting down server")
		}
	}()

	s.log.WithField("addr", s.server.Addr).Info("web server is listening")
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.log.WithError(err).Fatal("fatal error with server")
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		IndentJSON: true,
	})
}
