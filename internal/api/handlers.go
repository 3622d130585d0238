package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/satindergrewal/tajshow/internal/catalog"
	"github.com/satindergrewal/tajshow/internal/loop"
	"github.com/satindergrewal/tajshow/internal/player"
	"github.com/satindergrewal/tajshow/internal/stream"
	"github.com/satindergrewal/tajshow/internal/view"
)

const (
	posterWidth  = 640
	posterHeight = 360
	posterMax    = 1920
	qrSize       = 256
)

type actionKind int

const (
	actionBegin actionKind = iota
	actionReplay
	actionMute
)

// Status is the /api/status body.
type Status struct {
	Session     string                `json:"session"`
	Playing     bool                  `json:"playing"`
	SceneIndex  int                   `json:"scene_index"`
	Listeners   []stream.ListenerInfo `json:"listeners"`
	WebRTCPeers int                   `json:"webrtc_peers"`
	Frames      int64                 `json:"frames"`
	Uptime      string                `json:"uptime"`
}

// snapshot reads the player state on the loop goroutine.
func (s *Server) snapshot(r *http.Request) (player.State, error) {
	var st player.State
	err := s.d.Loop.Do(r.Context(), func() { st = s.d.Player.State() })
	return st, err
}

func (s *Server) loopError(w http.ResponseWriter, err error) {
	if errors.Is(err, loop.ErrStopped) {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}
	// Client went away.
	http.Error(w, err.Error(), http.StatusRequestTimeout)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Encode response: %v", err)
	}
}

func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	st, err := s.snapshot(r)
	if err != nil {
		s.loopError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.Render(w, view.Build(st, s.d.Catalog)); err != nil {
		log.Printf("Page: %v", err)
	}
}

func (s *Server) state(w http.ResponseWriter, r *http.Request) {
	st, err := s.snapshot(r)
	if err != nil {
		s.loopError(w, err)
		return
	}
	writeJSON(w, view.Build(st, s.d.Catalog))
}

func (s *Server) action(kind actionKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var st player.State
		err := s.d.Loop.Do(r.Context(), func() {
			p := s.d.Player
			switch kind {
			case actionBegin:
				p.Begin()
			case actionReplay:
				p.Replay()
			case actionMute:
				p.ToggleMute()
			}
			st = p.State()
		})
		if err != nil {
			s.loopError(w, err)
			return
		}
		writeJSON(w, view.Build(st, s.d.Catalog))
	}
}

func (s *Server) scenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.d.Catalog.Scenes())
}

func (s *Server) timeline(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	if err := catalog.WriteTimeline(w, s.d.Catalog); err != nil {
		log.Printf("Timeline: %v", err)
	}
}

func dimension(r *http.Request, key string, fallback int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return min(n, posterMax)
}

func (s *Server) poster(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	i := s.d.Catalog.Index(id)
	if i < 0 {
		http.Error(w, "unknown scene", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	width := dimension(r, "w", posterWidth)
	height := dimension(r, "h", posterHeight)
	if err := view.WritePoster(w, s.d.Catalog.Scene(i), width, height); err != nil {
		log.Printf("Poster %s: %v", id, err)
	}
}

func (s *Server) qr(w http.ResponseWriter, r *http.Request) {
	url := s.d.PublicURL
	if url == "" {
		url = "http://" + r.Host + "/"
	}
	png, err := view.QRCode(url, qrSize)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	st, err := s.snapshot(r)
	if err != nil {
		s.loopError(w, err)
		return
	}
	out := Status{
		Session:    st.Session,
		Playing:    st.Playing,
		SceneIndex: st.SceneIndex,
		Listeners:  []stream.ListenerInfo{},
	}
	if s.d.Broadcaster != nil {
		out.Listeners = s.d.Broadcaster.Listeners()
	}
	if s.d.Offer != nil {
		out.WebRTCPeers = s.d.Offer.PeerCount()
	}
	if s.d.Pipeline != nil {
		frames, uptime := s.d.Pipeline.Status()
		out.Frames = frames
		out.Uptime = uptime.Round(time.Second).String()
	}
	writeJSON(w, out)
}
