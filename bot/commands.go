package bot

import (
	"context"
	"errors"
	"strings"
	"time"

	"squidbot/bot/common"
	"squidbot/metrics"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Dispatcher routes prefixed chat messages to command handlers
type Dispatcher struct {
	prefix   string
	handlers map[string]common.CommandHandler
}

// NewDispatcher creates a dispatcher for the given command prefix
func NewDispatcher(prefix string) *Dispatcher {
	return &Dispatcher{
		prefix:   prefix,
		handlers: make(map[string]common.CommandHandler),
	}
}

// Register adds a handler for a command name. Names are case sensitive.
func (d *Dispatcher) Register(name string, handler common.CommandHandler) {
	d.handlers[name] = handler
}

// parseCommand splits "<prefix><name> arg1 arg2" into its parts
func (d *Dispatcher) parseCommand(content string) (name string, args []string, ok bool) {
	if !strings.HasPrefix(content, d.prefix) {
		return "", nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(content, d.prefix))
	if len(fields) == 0 {
		return "", nil, false
	}

	return fields[0], fields[1:], true
}

// Dispatch handles a message and returns the reply. handled is false for
// messages that are not commands for this bot.
func (d *Dispatcher) Dispatch(ctx context.Context, m *discordgo.Message) (reply string, handled bool) {
	if m.Author == nil || m.Author.Bot {
		return "", false
	}

	name, args, ok := d.parseCommand(m.Content)
	if !ok {
		return "", false
	}

	handler, exists := d.handlers[name]
	if !exists {
		log.WithFields(log.Fields{
			"command": name,
			"user_id": m.Author.ID,
		}).Debug("Ignoring unknown command")
		metrics.ObserveCommand(metrics.CommandUnregistered, metrics.StatusUnknown, 0)
		return "", false
	}

	userID, err := common.ParseUserID(m.Author.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", m.Author.ID, err)
		return common.GenericFailureMessage, true
	}

	req := &common.Request{
		ID:          uuid.NewString(),
		Command:     name,
		Args:        args,
		UserID:      userID,
		DisplayName: common.AuthorDisplayName(m),
		ChannelID:   m.ChannelID,
	}

	fields := log.Fields{
		"request_id": req.ID,
		"command":    name,
		"user_id":    userID,
		"channel_id": m.ChannelID,
	}

	defer func() {
		if r := recover(); r != nil {
			log.WithFields(fields).WithField("panic", r).Error("Command handler panicked")
			metrics.ObserveCommand(name, metrics.StatusError, 0)
			reply, handled = common.GenericFailureMessage, true
		}
	}()

	start := time.Now()
	reply, err = handler(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		var botErr *common.BotError
		if errors.As(err, &botErr) && botErr.IsUserError() {
			log.WithFields(fields).WithField("reason", botErr.LogMessage).Info("Command rejected")
			metrics.ObserveCommand(name, metrics.StatusRejected, elapsed)
		} else {
			log.WithFields(fields).WithError(err).Error("Command failed")
			metrics.ObserveCommand(name, metrics.StatusError, elapsed)
		}
		return common.ReplyFor(err), true
	}

	log.WithFields(fields).WithField("duration", elapsed).Debug("Command handled")
	metrics.ObserveCommand(name, metrics.StatusOK, elapsed)

	return reply, true
}
