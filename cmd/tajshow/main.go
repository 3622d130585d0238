package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/satindergrewal/tajshow/internal/api"
	"github.com/satindergrewal/tajshow/internal/audio"
	"github.com/satindergrewal/tajshow/internal/catalog"
	"github.com/satindergrewal/tajshow/internal/clock"
	"github.com/satindergrewal/tajshow/internal/config"
	"github.com/satindergrewal/tajshow/internal/loop"
	"github.com/satindergrewal/tajshow/internal/narration"
	"github.com/satindergrewal/tajshow/internal/player"
	"github.com/satindergrewal/tajshow/internal/speech"
	"github.com/satindergrewal/tajshow/internal/stream"
)

const shutdownTimeout = 5 * time.Second

func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Println("tajshow starting up...")

	cat := catalog.Default()

	// The loop outlives ctx so shutdown can still close the player on it.
	events := loop.New(256)
	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer stopLoop()
	clk := clock.NewReal(events.Post)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		events.Run(loopCtx)
		return nil
	})

	// Speech and music share one mixed PCM stream.
	bus := audio.NewBus()
	open := audio.Opener(audio.NewContext)
	if !cfg.Audio {
		open = audio.Unavailable
		log.Println("Ambient music off (SHOW_AUDIO)")
	}
	synth := audio.NewSynth(clk, open, audio.WithGain(cfg.MusicGain))
	pipeline := audio.NewPipeline(audio.NewMixer(synth, bus))
	broadcaster := stream.NewBroadcaster(stream.DefaultListenerBuffer)
	webrtcHandler := stream.NewWebRTCHandler(broadcaster, cfg.OpusBitrate)

	g.Go(func() error {
		pipeline.Run(gctx)
		return nil
	})
	g.Go(func() error {
		broadcaster.Run(gctx, pipeline.Frames())
		return nil
	})

	opts := []player.Option{
		player.WithMusic(synth),
		player.WithReplayDelay(cfg.ReplayDelay),
	}

	if cfg.Narration {
		tts := speech.NewEdgeTTS(cfg.TTSCommand)
		if err := tts.CheckInstalled(); err != nil {
			log.Printf("Narration disabled: %v", err)
		} else {
			queue := speech.NewQueue(tts, bus)
			g.Go(func() error {
				queue.Run(gctx)
				return nil
			})
			ncfg := narration.DefaultConfig()
			ncfg.Lang = cfg.VoiceLang
			ncfg.Lead = cfg.NarrationLead
			opts = append(opts, player.WithNarration(narration.New(clk, queue, ncfg)))
		}
	} else {
		log.Println("Narration off (SHOW_NARRATION)")
	}

	p := player.New(clk, cat, opts...)

	srv := api.New(api.Deps{
		Loop:        events,
		Player:      p,
		Catalog:     cat,
		Stream:      stream.NewHTTPHandler(broadcaster, cfg.MP3Bitrate, catalog.Title),
		Offer:       webrtcHandler,
		Broadcaster: broadcaster,
		Pipeline:    pipeline,
		PublicURL:   cfg.PublicURL,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: srv.Handler(),
		// Long-lived /stream requests end when the group does.
		BaseContext: func(net.Listener) context.Context { return gctx },
	}

	g.Go(func() error {
		log.Printf("tajshow live on %s", addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down...")
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()

		webrtcHandler.Close()
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			server.Close()
		}
		if err := events.Do(shutdownCtx, p.Close); err != nil {
			log.Printf("Player close: %v", err)
		}
		stopLoop()
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Fatalf("tajshow: %v", err)
	}
	log.Println("tajshow stopped")
}
