package bot

import (
	"context"
	"fmt"
	"time"

	"squidbot/bot/common"
	"squidbot/bot/features/balance"
	"squidbot/bot/features/gambling"
	"squidbot/bot/features/info"
	"squidbot/bot/features/shop"
	"squidbot/bot/features/stats"
	"squidbot/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// commandTimeout bounds a single command including name lookups
const commandTimeout = 30 * time.Second

// Config holds bot configuration
type Config struct {
	Token           string
	CommandPrefix   string
	LeaderboardSize int
}

// Services groups the services the bot's features call
type Services struct {
	Gambling service.GamblingService
	Shop     service.ShopService
	Stats    service.StatsService
	Balance  service.BalanceService
}

// Bot manages the Discord session and all feature modules
type Bot struct {
	config     Config
	session    *discordgo.Session
	dispatcher *Dispatcher

	// Feature modules
	gambling *gambling.Feature
	shop     *shop.Feature
	stats    *stats.Feature
	balance  *balance.Feature
	info     *info.Feature
}

// New creates a new bot instance with all features and opens the gateway connection
func New(config Config, services Services) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	bot := newBot(config, services, NewUserResolver(dg))
	bot.session = dg

	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleMessageCreate)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	return bot, nil
}

// newBot wires features and commands without touching the network
func newBot(config Config, services Services, resolver common.NameResolver) *Bot {
	bot := &Bot{
		config:     config,
		dispatcher: NewDispatcher(config.CommandPrefix),
		gambling:   gambling.New(services.Gambling, config.CommandPrefix),
		shop:       shop.New(services.Shop, config.CommandPrefix),
		stats:      stats.New(services.Stats, resolver, config.LeaderboardSize),
		balance:    balance.New(services.Balance),
		info:       info.New(config.CommandPrefix),
	}
	bot.registerCommands()
	return bot
}

// registerCommands maps command names to feature handlers
func (b *Bot) registerCommands() {
	b.dispatcher.Register("gamble", b.gambling.HandleGamble)
	b.dispatcher.Register("payout", b.gambling.HandlePayout)
	b.dispatcher.Register("cancel", b.gambling.HandleCancel)
	b.dispatcher.Register("sell", b.shop.HandleSell)
	b.dispatcher.Register("stats", b.stats.HandleStats)
	b.dispatcher.Register("leaderboard", b.stats.HandleLeaderboard)
	b.dispatcher.Register("balance", b.balance.HandleBalance)
	b.dispatcher.Register("info", b.info.HandleInfo)
}

// Close closes the gateway connection
func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.WithFields(log.Fields{
		"username": r.User.Username,
		"guilds":   len(r.Guilds),
	}).Info("Bot is ready")
}

func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if s.State != nil && s.State.User != nil && m.Author != nil && m.Author.ID == s.State.User.ID {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	reply, handled := b.dispatcher.Dispatch(ctx, m.Message)
	if !handled || reply == "" {
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		log.WithFields(log.Fields{
			"channel_id": m.ChannelID,
			"error":      err,
		}).Error("Error sending reply")
	}
}
