// Command register installs the bot's slash commands. Run it once after
// deploying, or again whenever the command set changes. Set GUILD_ID to
// install guild-scoped commands (instant, good for development); leave it
// empty for global commands (cached by Discord for up to an hour).
package main

import (
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"theoverse/internal/config"
	"theoverse/internal/ports/discord"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        discord.CommandFight,
			Description: "Step into the arena and challenge any acolyte",
		},
		{
			Name:        discord.CommandGenesis,
			Description: "Begin your journey and choose your starting power",
		},
	}

	guildID := os.Getenv("GUILD_ID")
	registered, err := session.ApplicationCommandBulkOverwrite(cfg.AppID, guildID, commands)
	if err != nil {
		log.Fatalf("Failed to register commands: %v", err)
	}
	for _, cmd := range registered {
		log.Infof("Registered /%s", cmd.Name)
	}
}
