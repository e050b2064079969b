package discord

import (
	"crypto/ed25519"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// VerifySignature rejects requests whose ed25519 signature does not match the
// application's public key. Discord probes the endpoint with bad signatures
// during setup, so rejections are expected traffic, not attacks.
func VerifySignature(key ed25519.PublicKey, log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !discordgo.VerifyInteraction(r, key) {
				log.Warn("Rejected interaction with invalid signature")
				http.Error(w, "invalid request signature", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
