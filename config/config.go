package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/CharaWein/chessGo/bots"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
	"github.com/notnil/chess"
)

type Config struct {
	Logs LogConfig
	Bot  BotConfig
	Http HTTPConfig
}

type LogConfig struct {
	Style string // "json" or "console"
	Level string
}

type BotConfig struct {
	Tier        bots.Tier
	Delay       time.Duration // pause before the bot replies in the desktop client
	Seed        int64         // 0 seeds from the clock
	PlayerColor chess.Color
}

type HTTPConfig struct {
	Addr string
}

func Default() *Config {
	return &Config{
		Logs: LogConfig{Style: "json", Level: "info"},
		Bot: BotConfig{
			Tier:        5,
			Delay:       500 * time.Millisecond,
			PlayerColor: chess.White,
		},
		Http: HTTPConfig{Addr: "0.0.0.0:8080"},
	}
}

// LoadConfig reads the environment on top of Default.
func LoadConfig() (*Config, error) {
	cfg := Default()

	if v, ok := lookup("LOG_STYLE"); ok {
		cfg.Logs.Style = strings.ToLower(v)
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.Logs.Level = strings.ToLower(v)
	}
	if v, ok := lookup("HTTP_ADDR"); ok {
		cfg.Http.Addr = v
	}

	if v, ok := lookup("CHESS_TIER"); ok {
		tier, err := bots.ParseTier(v)
		if err != nil {
			return nil, fmt.Errorf("CHESS_TIER: %w", err)
		}
		cfg.Bot.Tier = tier
	}

	if v, ok := lookup("CHESS_BOT_DELAY_MS"); ok {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("CHESS_BOT_DELAY_MS: invalid value %q", v)
		}
		cfg.Bot.Delay = time.Duration(ms) * time.Millisecond
	}

	if v, ok := lookup("CHESS_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("CHESS_SEED: %w", err)
		}
		cfg.Bot.Seed = seed
	}

	if v, ok := lookup("CHESS_PLAYER_COLOR"); ok {
		switch strings.ToLower(v) {
		case "white", "w":
			cfg.Bot.PlayerColor = chess.White
		case "black", "b":
			cfg.Bot.PlayerColor = chess.Black
		default:
			return nil, fmt.Errorf("CHESS_PLAYER_COLOR: invalid value %q", v)
		}
	}

	return cfg, nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
