package discord

import "github.com/bwmarrin/discordgo"

// WebhookClient is the slice of the Discord REST surface the handler needs:
// posting follow-up messages and deleting earlier prompts through the
// interaction webhook. *discordgo.Session satisfies it; tests substitute a
// recording fake.
type WebhookClient interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	WebhookMessageDelete(webhookID, token, messageID string, options ...discordgo.RequestOption) error
}
