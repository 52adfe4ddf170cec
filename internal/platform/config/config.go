package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jilali-elhamidi/generate-video-ai/internal/platform/envutil"
)

// TTSConfig selects the synthesis voice for the primary backend.
type TTSConfig struct {
	LanguageCode string  `yaml:"language_code"`
	Voice        string  `yaml:"voice"`
	SpeakingRate float64 `yaml:"speaking_rate"`
}

// Config is the process-wide configuration, loaded once at startup. Values
// come from defaults, then an optional YAML file, then environment overrides.
type Config struct {
	Port      int    `yaml:"port"`
	LogMode   string `yaml:"log_mode"`
	OutputDir string `yaml:"output_dir"`

	FontPath string `yaml:"font_path"`

	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`
	EspeakPath  string `yaml:"espeak_path"`

	TTS TTSConfig `yaml:"tts"`
}

func defaults() *Config {
	return &Config{
		Port:        8000,
		LogMode:     "development",
		OutputDir:   ".",
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",
		EspeakPath:  "espeak-ng",
		TTS: TTSConfig{
			LanguageCode: "en-US",
			SpeakingRate: 1.0,
		},
	}
}

// Load builds the configuration. path may be empty, in which case only
// defaults and environment variables apply.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Port = envutil.Int("PORT", cfg.Port)
	cfg.LogMode = envutil.Str("LOG_MODE", cfg.LogMode)
	cfg.OutputDir = envutil.Str("OUTPUT_DIR", cfg.OutputDir)
	cfg.FontPath = envutil.Str("SLIDE_FONT_PATH", cfg.FontPath)
	cfg.FFmpegPath = envutil.Str("FFMPEG_PATH", cfg.FFmpegPath)
	cfg.FFprobePath = envutil.Str("FFPROBE_PATH", cfg.FFprobePath)
	cfg.EspeakPath = envutil.Str("ESPEAK_PATH", cfg.EspeakPath)
	cfg.TTS.LanguageCode = envutil.Str("TTS_LANGUAGE", cfg.TTS.LanguageCode)
	cfg.TTS.Voice = envutil.Str("TTS_VOICE", cfg.TTS.Voice)
	cfg.TTS.SpeakingRate = envutil.Float("TTS_SPEAKING_RATE", cfg.TTS.SpeakingRate)

	return cfg, nil
}
