package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/jilali-elhamidi/generate-video-ai/internal/assemble"
	"github.com/jilali-elhamidi/generate-video-ai/internal/handlers"
	"github.com/jilali-elhamidi/generate-video-ai/internal/pipeline"
	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/logger"
	"github.com/jilali-elhamidi/generate-video-ai/internal/platform/config"
	"github.com/jilali-elhamidi/generate-video-ai/internal/render"
	"github.com/jilali-elhamidi/generate-video-ai/internal/segment"
	"github.com/jilali-elhamidi/generate-video-ai/internal/server"
	"github.com/jilali-elhamidi/generate-video-ai/internal/tts"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	renderer, err := render.NewRenderer(render.Config{FontPath: cfg.FontPath}, log)
	if err != nil {
		log.Fatal("renderer init failed", "error", err)
	}

	// Backend order is the fallback order: neural first, offline second.
	var backends []tts.Backend
	if google, err := tts.NewGoogleBackend(log, cfg.TTS); err != nil {
		log.Warn("Google TTS backend unavailable", "error", err)
	} else {
		backends = append(backends, google)
	}
	backends = append(backends, tts.NewEspeakBackend(log, cfg.EspeakPath))

	prober := tts.NewProber(log, cfg.FFprobePath)
	synth := tts.NewSynthesizer(log, prober, backends...)
	defer synth.Close()

	builder := segment.NewBuilder(renderer, synth, log)
	runner := assemble.NewFFmpegRunner(log, cfg.FFmpegPath)
	assembler := assemble.New(runner, renderer, log)
	pipe := pipeline.New(builder, assembler, cfg.OutputDir, log)

	router := server.NewRouter(server.RouterConfig{
		GenerateHandler: handlers.NewGenerateHandler(pipe, log),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("starting server", "addr", addr)
	if err := router.Run(addr); err != nil {
		// Error, not Fatal: the deferred client teardown and log flush
		// still have to run.
		log.Error("server stopped", "error", err)
	}
}
