package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mehidihasan1/twixdbot/internal/config"
	"github.com/mehidihasan1/twixdbot/internal/constants"
	"github.com/mehidihasan1/twixdbot/internal/service"
	"github.com/mehidihasan1/twixdbot/internal/session"
	"github.com/mehidihasan1/twixdbot/pkg/telco"
)

// Reply is one outbound message: text plus an optional inline keyboard.
type Reply struct {
	Text     string
	Keyboard [][]Choice
}

// Choice is a single actionable button carrying an opaque callback token.
type Choice struct {
	Label string
	Data  string
}

// Resolver hands out validated provider clients per user.
type Resolver interface {
	Resolve(ctx context.Context, userID int64) (telco.API, error)
	Configure(ctx context.Context, userID int64, accountSID, authToken string) error
}

// Dispatcher maps inbound commands and button callbacks to provider
// operations. Each event is one terminal request/response cycle; the only
// state surviving it is the user's stored session.
type Dispatcher struct {
	resolver  Resolver
	numbers   service.NumberService
	store     *session.Store
	telegram  config.Telegram
	ownerInfo string
	logger    *zap.Logger
}

func NewDispatcher(resolver Resolver, numbers service.NumberService, store *session.Store,
	cfg *config.Config, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		resolver:  resolver,
		numbers:   numbers,
		store:     store,
		telegram:  cfg.Telegram,
		ownerInfo: cfg.Owner.InfoText,
		logger:    logger,
	}
}

// HandleCommand runs one command event through the pipeline: preconditions,
// argument validation, provider operation, formatting.
func (d *Dispatcher) HandleCommand(ctx context.Context, userID int64, firstName, name string, args []string) []Reply {
	log := d.logger.With(
		zap.String("eventID", uuid.NewString()),
		zap.Int64("userID", userID),
		zap.String("command", name))

	switch name {
	case "start":
		return d.start(firstName)
	case "help":
		return d.help(userID)
	case "configure":
		return d.configure(ctx, log, userID, args)
	case "search_numbers":
		return d.searchNumbers(ctx, log, userID, args)
	case "buy_number":
		return d.buyNumber(ctx, log, userID, args)
	case "my_numbers":
		return d.myNumbers(ctx, log, userID)
	case "release_number":
		return d.releaseNumber(ctx, log, userID, args)
	case "check_sms":
		return d.checkSMS(ctx, log, userID, args)
	case "ownerinfo":
		return reply(d.ownerInfo)
	case "admin_stats":
		return d.adminStats(log, userID)
	default:
		log.Warn("Unknown command")
		return reply(constants.MsgHelpOverview)
	}
}

// HandleCallback runs one button event through the same pipeline, recovering
// the arguments from the opaque callback token instead of tokenized text.
func (d *Dispatcher) HandleCallback(ctx context.Context, userID int64, data string) []Reply {
	log := d.logger.With(
		zap.String("eventID", uuid.NewString()),
		zap.Int64("userID", userID),
		zap.String("callback", data))

	action, ok := ParseToken(data)
	if !ok {
		log.Warn("Unrecognized callback payload")
		return nil
	}

	switch action.Prefix {
	case PrefixMenu:
		return d.menuAction(ctx, log, userID, action.Payload)
	case PrefixBuy:
		client, failure := d.requireClient(ctx, log, userID)
		if client == nil {
			return failure
		}
		ack := fmt.Sprintf("🛒 Processing purchase for `%s`...", action.Payload)
		return append(reply(ack), Reply{Text: d.numbers.Purchase(ctx, client, action.Payload).Message})
	case PrefixRelease:
		client, failure := d.requireClient(ctx, log, userID)
		if client == nil {
			return failure
		}
		ack := fmt.Sprintf("⏳ Processing release for `%s`...", action.Payload)
		return append(reply(ack), Reply{Text: d.numbers.Release(ctx, client, action.Payload).Message})
	case PrefixCheckSMS:
		client, failure := d.requireClient(ctx, log, userID)
		if client == nil {
			return failure
		}
		ack := fmt.Sprintf("📨 Fetching last %d SMS for `%s`...", service.DefaultSMSLimit, action.Payload)
		result := d.numbers.CheckSMS(ctx, client, service.CheckSMSQuery{PhoneNumber: action.Payload})
		return append(reply(ack), Reply{Text: result.Message})
	default:
		return nil
	}
}

func (d *Dispatcher) menuAction(ctx context.Context, log *zap.Logger, userID int64, action string) []Reply {
	switch action {
	case "search_guide":
		return reply(constants.MsgSearchGuide)
	case "configure_guide":
		return reply(constants.MsgConfigureGuide)
	case "help_overview":
		return reply(constants.MsgHelpOverview)
	case "owner_info":
		return reply(d.ownerInfo)
	case "my_numbers_action":
		return d.myNumbers(ctx, log, userID)
	default:
		log.Warn("Unknown menu action", zap.String("action", action))
		return nil
	}
}

func (d *Dispatcher) start(firstName string) []Reply {
	welcome := fmt.Sprintf(
		"👋 Hello *%s*!\n\n"+
			"I'm your phone number management bot. 🤖\n\n"+
			"Use the buttons below or type commands directly.\n"+
			"First, ensure your credentials are set using /configure (see guide below if needed).",
		firstName)

	keyboard := [][]Choice{
		{{Label: "🔍 Search Guide", Data: Token(PrefixMenu, "search_guide")}},
		{{Label: "📞 List My Numbers", Data: Token(PrefixMenu, "my_numbers_action")}},
		{{Label: "⚙️ Configure Guide", Data: Token(PrefixMenu, "configure_guide")}},
		{{Label: "❓ Full Help (/help)", Data: Token(PrefixMenu, "help_overview")}},
		{{Label: "ℹ️ Owner Info", Data: Token(PrefixMenu, "owner_info")}},
	}

	return []Reply{{Text: welcome, Keyboard: keyboard}}
}

func (d *Dispatcher) help(userID int64) []Reply {
	text := constants.MsgHelp
	if d.telegram.IsAdmin(userID) {
		text += constants.MsgHelpAdminExtra
	}
	return reply(text)
}

func (d *Dispatcher) configure(ctx context.Context, log *zap.Logger, userID int64, args []string) []Reply {
	if len(args) != 2 {
		return reply(constants.UsageConfigure)
	}

	err := d.resolver.Configure(ctx, userID, args[0], args[1])
	switch {
	case err == nil:
		log.Info("Credentials configured and validated")
		return reply(constants.MsgConfigured)
	case errors.Is(err, session.ErrInvalidAccountSID):
		return reply(constants.MsgInvalidSID)
	default:
		log.Warn("Credential validation failed", zap.Error(err))
		return reply(constants.MsgConfigureFailed)
	}
}

func (d *Dispatcher) searchNumbers(ctx context.Context, log *zap.Logger, userID int64, args []string) []Reply {
	client, failure := d.requireClient(ctx, log, userID)
	if client == nil {
		return failure
	}

	if len(args) < 1 {
		return reply(constants.UsageSearch)
	}

	query := service.SearchQuery{Country: strings.ToUpper(args[0])}
	if len(args) > 1 {
		query.AreaCode = args[1]
	}
	if len(args) > 2 {
		query.Pattern = args[2]
	}
	if len(args) > 3 {
		query.PostalCode = args[3]
	}

	criteria := []string{fmt.Sprintf("*Country:* `%s`", query.Country)}
	if v := service.NormalizeFilter(query.AreaCode); v != "" {
		criteria = append(criteria, fmt.Sprintf("*Area Code:* `%s`", v))
	}
	if v := service.NormalizeFilter(query.Pattern); v != "" {
		criteria = append(criteria, fmt.Sprintf("*Pattern:* `%s`", v))
	}
	if v := service.NormalizeFilter(query.PostalCode); v != "" {
		criteria = append(criteria, fmt.Sprintf("*Zip Code:* `%s`", v))
	}
	ack := fmt.Sprintf("🔍 Searching for local numbers with criteria:\n %s...", strings.Join(criteria, ", "))

	return append(reply(ack), formatAvailable(d.numbers.Search(ctx, client, query))...)
}

func (d *Dispatcher) buyNumber(ctx context.Context, log *zap.Logger, userID int64, args []string) []Reply {
	client, failure := d.requireClient(ctx, log, userID)
	if client == nil {
		return failure
	}

	if len(args) != 1 {
		return reply(constants.UsageBuy)
	}
	if !strings.HasPrefix(args[0], "+") {
		return reply(constants.MsgInvalidPhoneNumber)
	}

	ack := fmt.Sprintf("🛒 Attempting to buy `%s`...", args[0])
	return append(reply(ack), Reply{Text: d.numbers.Purchase(ctx, client, args[0]).Message})
}

func (d *Dispatcher) myNumbers(ctx context.Context, log *zap.Logger, userID int64) []Reply {
	client, failure := d.requireClient(ctx, log, userID)
	if client == nil {
		return failure
	}

	ack := "📋 Fetching your numbers..."
	result := d.numbers.ListOwned(ctx, client, service.ListOwnedQuery{Limit: service.DefaultListLimit})
	return append(reply(ack), formatOwned(result)...)
}

func (d *Dispatcher) releaseNumber(ctx context.Context, log *zap.Logger, userID int64, args []string) []Reply {
	client, failure := d.requireClient(ctx, log, userID)
	if client == nil {
		return failure
	}

	if len(args) != 1 {
		return reply(constants.UsageRelease)
	}
	if !strings.HasPrefix(args[0], "+") {
		return reply(constants.MsgInvalidPhoneNumber)
	}

	ack := fmt.Sprintf("⏳ Attempting to release `%s`...", args[0])
	return append(reply(ack), Reply{Text: d.numbers.Release(ctx, client, args[0]).Message})
}

func (d *Dispatcher) checkSMS(ctx context.Context, log *zap.Logger, userID int64, args []string) []Reply {
	client, failure := d.requireClient(ctx, log, userID)
	if client == nil {
		return failure
	}

	if len(args) < 1 {
		return reply(constants.UsageCheckSMS)
	}

	limit := service.DefaultSMSLimit
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			return reply(constants.MsgLimitNotANumber)
		}
		if parsed < 1 || parsed > service.MaxSMSLimit {
			return reply(constants.MsgLimitOutOfRange)
		}
		limit = parsed
	}

	if !strings.HasPrefix(args[0], "+") {
		return reply(constants.MsgInvalidPhoneNumber)
	}

	ack := fmt.Sprintf("📨 Fetching last %d SMS messages for `%s`...", limit, args[0])
	result := d.numbers.CheckSMS(ctx, client, service.CheckSMSQuery{PhoneNumber: args[0], Limit: limit})
	return append(reply(ack), Reply{Text: result.Message})
}

func (d *Dispatcher) adminStats(log *zap.Logger, userID int64) []Reply {
	if !d.telegram.IsAdmin(userID) {
		log.Warn("Unauthorized access attempt to admin command")
		return reply(constants.MsgAdminOnly)
	}

	return reply(fmt.Sprintf(
		"📊 *Admin Statistics*\n\nActive configurations in this session: *%d*", d.store.Count()))
}

// requireClient resolves a validated provider client or produces the
// short-circuit reply. No provider operation runs when it returns nil.
func (d *Dispatcher) requireClient(ctx context.Context, log *zap.Logger, userID int64) (telco.API, []Reply) {
	client, err := d.resolver.Resolve(ctx, userID)
	if err == nil {
		return client, nil
	}

	if errors.Is(err, session.ErrNotConfigured) {
		return nil, reply(constants.MsgConfigureFirst)
	}

	log.Error("Failed to resolve provider client", zap.Error(err))
	return nil, reply("❗ An unexpected error occurred. Please try again.")
}

func reply(text string) []Reply {
	return []Reply{{Text: text}}
}
