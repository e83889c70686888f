package bot

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"casino/bot/features/admin"
	"casino/bot/features/balance"
	"casino/bot/features/blackjack"
	"casino/bot/features/coinflip"
	"casino/bot/features/dice"
	"casino/bot/features/slots"
	"casino/service"
	"casino/session"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token        string
	GuildID      string
	AdminRoleIDs []string
}

type Bot struct {
	config    Config
	session   *discordgo.Session
	sessions  *session.Manager
	slots     *slots.Feature
	dice      *dice.Feature
	coinflip  *coinflip.Feature
	blackjack *blackjack.Feature
	balance   *balance.Feature
	admin     *admin.Feature
}

func New(config Config, games service.GameService, store service.Store, sessions *session.Manager) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:    config,
		session:   dg,
		sessions:  sessions,
		slots:     slots.New(games, store, sessions),
		dice:      dice.New(games, store, sessions),
		coinflip:  coinflip.New(games, store, sessions),
		blackjack: blackjack.New(games, store, sessions),
		balance:   balance.New(store),
		admin:     admin.New(store, config.AdminRoleIDs),
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Register component interaction handlers
	dg.AddHandler(bot.handleGameInteractions)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Start periodic cleanup of settled and expired game sessions
	go bot.startSessionCleanup()

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

// startSessionCleanup runs periodic cleanup of old game sessions
func (b *Bot) startSessionCleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		removed := b.sessions.Sweep()
		if removed > 0 {
			log.Debugf("Swept %d stale game sessions", removed)
		}
	}
}

func betOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "bet",
		Description: "Amount of coins to bet",
		Required:    true,
		MinValue:    float64Ptr(1),
	}
}

func float64Ptr(v float64) *float64 { return &v }

func (b *Bot) registerCommands() error {
	gameChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Slots", Value: "slot"},
		{Name: "Dice", Value: "dice"},
		{Name: "Blackjack", Value: "blackjack"},
		{Name: "Coin Flip", Value: "coinflip"},
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "slots",
			Description: "Spin the slot machine",
			Options:     []*discordgo.ApplicationCommandOption{betOption()},
		},
		{
			Name:        "dice",
			Description: "Roll a die against the house",
			Options:     []*discordgo.ApplicationCommandOption{betOption()},
		},
		{
			Name:        "coinflip",
			Description: "Call a coin flip",
			Options:     []*discordgo.ApplicationCommandOption{betOption()},
		},
		{
			Name:        "blackjack",
			Description: "Play a hand of blackjack against the dealer",
			Options:     []*discordgo.ApplicationCommandOption{betOption()},
		},
		{
			Name:        "balance",
			Description: "Check your current coin balance",
		},
		{
			Name:        "mystats",
			Description: "View your gambling statistics",
		},
		{
			Name:        "leaderboard",
			Description: "Display the richest players",
		},
		{
			Name:        "multipliers",
			Description: "View the current game payout multipliers",
		},
		{
			Name:        "admin",
			Description: "Casino administration commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set-multiplier",
					Description: "Change a game payout multiplier",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "game",
							Description: "Game to configure",
							Required:    true,
							Choices:     gameChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "kind",
							Description: "Outcome kind (win, jackpot, two_match, blackjack)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "value",
							Description: "New multiplier value",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "give-coins",
					Description: "Give coins to a player (negative to take)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "Player to adjust",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "amount",
							Description: "Amount of coins to add (negative to remove)",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset-balance",
					Description: "Reset a player back to the starting balance",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "Player to reset",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "player-stats",
					Description: "View another player's statistics",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "Player to inspect",
							Required:    true,
						},
					},
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "slots":
		b.slots.HandleCommand(s, i)
	case "dice":
		b.dice.HandleCommand(s, i)
	case "coinflip":
		b.coinflip.HandleCommand(s, i)
	case "blackjack":
		b.blackjack.HandleCommand(s, i)
	case "balance":
		b.balance.HandleBalance(s, i)
	case "mystats":
		b.balance.HandleMyStats(s, i)
	case "leaderboard":
		b.balance.HandleLeaderboard(s, i)
	case "multipliers":
		b.admin.HandleMultipliers(s, i)
	case "admin":
		b.admin.HandleAdmin(s, i)
	}
}

// handleGameInteractions routes button presses to the owning game feature
func (b *Bot) handleGameInteractions(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	customID := i.MessageComponentData().CustomID
	switch {
	case strings.HasPrefix(customID, "slots_"):
		b.slots.HandleInteraction(s, i)
	case strings.HasPrefix(customID, "dice_"):
		b.dice.HandleInteraction(s, i)
	case strings.HasPrefix(customID, "coinflip_"):
		b.coinflip.HandleInteraction(s, i)
	case strings.HasPrefix(customID, "blackjack_"):
		b.blackjack.HandleInteraction(s, i)
	}
}
