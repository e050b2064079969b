package config

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PUBLIC_KEY", strings.Repeat("ab", ed25519.PublicKeySize))
	t.Setenv("APP_ID", "app-1")
	t.Setenv("DISCORD_TOKEN", "token-1")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != 3000 {
		t.Fatalf("Expected default port 3000, got %d", cfg.Port)
	}
	if cfg.ArbiterTimeoutSec != 30 {
		t.Fatalf("Expected default timeout 30, got %d", cfg.ArbiterTimeoutSec)
	}
	if cfg.ArbiterURL == "" {
		t.Fatal("Expected a default arbiter URL")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("PUBLIC_KEY", "")
	t.Setenv("APP_ID", "")
	t.Setenv("DISCORD_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error when required variables are missing")
	}
}

func TestSigningKey_RoundTrip(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	cfg := Config{PublicKey: hex.EncodeToString(pub)}
	key, err := cfg.SigningKey()
	if err != nil {
		t.Fatalf("SigningKey returned error: %v", err)
	}
	if !key.Equal(pub) {
		t.Fatal("Decoded key does not match the original")
	}
}

func TestSigningKey_RejectsBadInput(t *testing.T) {
	if _, err := (Config{PublicKey: "not-hex"}).SigningKey(); err == nil {
		t.Fatal("Expected error for non-hex key")
	}
	if _, err := (Config{PublicKey: "abcd"}).SigningKey(); err == nil {
		t.Fatal("Expected error for short key")
	}
}
