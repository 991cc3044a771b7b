package bot

import (
	"context"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v4"

	"github.com/mehidihasan1/twixdbot/internal/config"
)

var commandNames = []string{
	"start", "help", "configure", "search_numbers", "buy_number",
	"my_numbers", "release_number", "check_sms", "ownerinfo", "admin_stats",
}

// Telegram is the thin transport adapter. It tokenizes inbound updates,
// hands them to the dispatcher, and renders replies; everything else lives
// behind the Dispatcher boundary.
type Telegram struct {
	bot        *tele.Bot
	dispatcher *Dispatcher
	logger     *zap.Logger
}

func NewTelegram(cfg *config.Config, dispatcher *Dispatcher, logger *zap.Logger) (*Telegram, error) {
	b, err := tele.NewBot(tele.Settings{
		Token:     cfg.Telegram.Token,
		Poller:    &tele.LongPoller{Timeout: cfg.Telegram.PollTimeout},
		ParseMode: tele.ModeMarkdown,
	})
	if err != nil {
		return nil, err
	}

	t := &Telegram{bot: b, dispatcher: dispatcher, logger: logger}
	t.register()

	return t, nil
}

func (t *Telegram) register() {
	for _, name := range commandNames {
		name := name
		t.bot.Handle("/"+name, func(c tele.Context) error {
			args := strings.Fields(c.Message().Payload)
			replies := t.dispatcher.HandleCommand(context.Background(),
				c.Sender().ID, c.Sender().FirstName, name, args)
			return t.send(c, replies)
		})
	}

	t.bot.Handle(tele.OnCallback, func(c tele.Context) error {
		defer func() {
			if err := c.Respond(); err != nil {
				t.logger.Warn("Failed to acknowledge callback", zap.Error(err))
			}
		}()

		data := strings.TrimPrefix(c.Callback().Data, "\f")
		replies := t.dispatcher.HandleCallback(context.Background(), c.Sender().ID, data)
		return t.send(c, replies)
	})
}

func (t *Telegram) send(c tele.Context, replies []Reply) error {
	for _, reply := range replies {
		if len(reply.Keyboard) == 0 {
			if err := c.Send(reply.Text); err != nil {
				return err
			}
			continue
		}

		rows := make([][]tele.InlineButton, 0, len(reply.Keyboard))
		for _, row := range reply.Keyboard {
			buttons := make([]tele.InlineButton, 0, len(row))
			for _, choice := range row {
				buttons = append(buttons, tele.InlineButton{Text: choice.Label, Data: choice.Data})
			}
			rows = append(rows, buttons)
		}

		if err := c.Send(reply.Text, &tele.ReplyMarkup{InlineKeyboard: rows}); err != nil {
			return err
		}
	}

	return nil
}

// Start begins long-polling. It blocks, so callers run it on its own
// goroutine.
func (t *Telegram) Start() {
	t.bot.Start()
}

func (t *Telegram) Stop() {
	t.bot.Stop()
}
