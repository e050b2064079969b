package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the bot reads from its environment. Secrets come
// from the Discord developer portal; the arbiter URL defaults to the hosted
// service and only changes for local arbiter development.
type Config struct {
	Port              int    `env:"PORT" envDefault:"3000"`
	PublicKey         string `env:"PUBLIC_KEY,required,notEmpty"`
	AppID             string `env:"APP_ID,required,notEmpty"`
	BotToken          string `env:"DISCORD_TOKEN,required,notEmpty"`
	ArbiterURL        string `env:"ARBITER_URL" envDefault:"https://aetherarbiter.bowojori7.repl.co"`
	ArbiterTimeoutSec int    `env:"ARBITER_TIMEOUT_SEC" envDefault:"30"`
}

// Load reads configuration from the environment, consulting a .env file
// first when one exists. A missing .env is not an error; deployed instances
// get real environment variables instead.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SigningKey decodes the hex-encoded ed25519 public key used to verify
// interaction signatures.
func (c Config) SigningKey() (ed25519.PublicKey, error) {
	key, err := hex.DecodeString(c.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(key))
	}
	return ed25519.PublicKey(key), nil
}
