package tts

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"

	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/ctxutil"
	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/logger"
	"github.com/jilali-elhamidi/generate-video-ai/internal/platform/config"
)

// googleBackend is the primary neural backend, speaking through the Google
// Cloud Text-to-Speech API and writing LINEAR16 WAV output.
type googleBackend struct {
	log    *logger.Logger
	client *texttospeech.Client
	cfg    config.TTSConfig
}

func NewGoogleBackend(log *logger.Logger, cfg config.TTSConfig) (Backend, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	slog := log.With("backend", "gcp_tts")

	client, err := texttospeech.NewClient(context.Background(), clientOptionsFromEnv()...)
	if err != nil {
		return nil, fmt.Errorf("texttospeech client: %w", err)
	}

	if cfg.LanguageCode == "" {
		cfg.LanguageCode = "en-US"
	}
	if cfg.SpeakingRate <= 0 {
		cfg.SpeakingRate = 1.0
	}

	return &googleBackend{log: slog, client: client, cfg: cfg}, nil
}

func (g *googleBackend) Name() string { return "gcp_tts" }

func (g *googleBackend) Available() bool { return g.client != nil }

func (g *googleBackend) Synthesize(ctx context.Context, text string, outPath string) error {
	ctx = ctxutil.Default(ctx)
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: g.cfg.LanguageCode,
			Name:         g.cfg.Voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_LINEAR16,
			SpeakingRate:  g.cfg.SpeakingRate,
		},
	}

	resp, err := g.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return fmt.Errorf("synthesize speech: %w", err)
	}
	if len(resp.AudioContent) == 0 {
		return fmt.Errorf("synthesize speech: empty audio content")
	}
	if err := os.WriteFile(outPath, resp.AudioContent, 0o644); err != nil {
		return fmt.Errorf("write audio file: %w", err)
	}
	return nil
}

func (g *googleBackend) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func clientOptionsFromEnv() []option.ClientOption {
	creds := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	if creds == "" {
		creds = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	opts := []option.ClientOption{}
	if creds == "" {
		return opts
	}
	if strings.HasPrefix(creds, "{") {
		opts = append(opts, option.WithCredentialsJSON([]byte(creds)))
	} else {
		opts = append(opts, option.WithCredentialsFile(creds))
	}
	return opts
}
