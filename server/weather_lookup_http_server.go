package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type WeatherLookupHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewWeatherLookupHttpServer(router *Router, muxRouter *mux.Router, addr string) *WeatherLookupHttpServer {
	return &WeatherLookupHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully. Request
// contexts derive from ctx, so long-lived stream connections end with it.
func (s *WeatherLookupHttpServer) Run(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:        s.addr,
		Handler:     s.muxRouter,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("[WeatherLookupHttpServer] Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Println("[WeatherLookupHttpServer] Shutting down the server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Println("[WeatherLookupHttpServer] Server exiting")
	return nil
}
