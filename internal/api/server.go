// Package api is the show's HTTP surface: the presentation page, its JSON
// state and actions, generated images, and the audio stream endpoints.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/satindergrewal/tajshow/internal/audio"
	"github.com/satindergrewal/tajshow/internal/catalog"
	"github.com/satindergrewal/tajshow/internal/loop"
	"github.com/satindergrewal/tajshow/internal/player"
	"github.com/satindergrewal/tajshow/internal/stream"
)

// Deps are the collaborators the routes use. Stream, Offer, Broadcaster and
// Pipeline may be nil when audio output is disabled.
type Deps struct {
	Loop    *loop.Loop
	Player  *player.Player
	Catalog *catalog.Catalog

	Stream      http.Handler
	Offer       *stream.WebRTCHandler
	Broadcaster *stream.Broadcaster
	Pipeline    *audio.Pipeline

	// PublicURL is encoded in the QR code. Empty means use the request host.
	PublicURL string
}

// Server holds the handlers.
type Server struct {
	d Deps
}

// New creates a server.
func New(d Deps) *Server {
	return &Server{d: d}
}

// Handler returns the routed, logged and CORS-wrapped handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/", s.page).Methods(http.MethodGet)
	r.HandleFunc("/api/state", s.state).Methods(http.MethodGet)
	r.HandleFunc("/api/begin", s.action(actionBegin)).Methods(http.MethodPost)
	r.HandleFunc("/api/replay", s.action(actionReplay)).Methods(http.MethodPost)
	r.HandleFunc("/api/mute", s.action(actionMute)).Methods(http.MethodPost)
	r.HandleFunc("/api/scenes", s.scenes).Methods(http.MethodGet)
	r.HandleFunc("/api/scenes/{id}/poster.png", s.poster).Methods(http.MethodGet)
	r.HandleFunc("/api/timeline.yaml", s.timeline).Methods(http.MethodGet)
	r.HandleFunc("/api/qr.png", s.qr).Methods(http.MethodGet)
	r.HandleFunc("/api/status", s.status).Methods(http.MethodGet)

	if s.d.Stream != nil {
		r.Handle("/stream", s.d.Stream).Methods(http.MethodGet)
	}
	if s.d.Offer != nil {
		r.Handle("/offer", s.d.Offer).Methods(http.MethodPost)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}
