package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mehidihasan1/twixdbot/pkg/telco"
)

const (
	// SearchPageSize caps how many matches one search request asks for.
	SearchPageSize = 5

	DefaultListLimit = 20
	DefaultSMSLimit  = 5
	MaxSMSLimit      = 20
)

// NumberService wraps the provider calls the bot exposes. Every method
// normalizes success and failure into a Result; shared state is never touched
// here (cache invalidation belongs to the resolver alone).
type NumberService interface {
	Search(ctx context.Context, api telco.API, query SearchQuery) Result
	Purchase(ctx context.Context, api telco.API, phoneNumber string) Result
	ListOwned(ctx context.Context, api telco.API, query ListOwnedQuery) Result
	Release(ctx context.Context, api telco.API, phoneNumber string) Result
	CheckSMS(ctx context.Context, api telco.API, query CheckSMSQuery) Result
}

type numbers struct {
	logger *zap.Logger
}

func NewNumberService(logger *zap.Logger) NumberService {
	return &numbers{logger: logger}
}

// NormalizeFilter maps the sentinel values a user types to skip an optional
// search argument ("none", "_", "-", any case) to the empty string.
func NormalizeFilter(arg string) string {
	switch strings.ToLower(arg) {
	case "none", "_", "-":
		return ""
	}
	return arg
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func (n *numbers) Search(ctx context.Context, api telco.API, query SearchQuery) Result {
	filters := telco.SearchFilters{
		AreaCode:     NormalizeFilter(query.AreaCode),
		Contains:     NormalizeFilter(query.Pattern),
		InPostalCode: NormalizeFilter(query.PostalCode),
		PageSize:     SearchPageSize,
	}

	n.logger.Info("Searching provider for numbers",
		zap.String("country", query.Country),
		zap.String("areaCode", filters.AreaCode),
		zap.String("pattern", filters.Contains),
		zap.String("zipCode", filters.InPostalCode))

	available, err := api.SearchAvailable(ctx, query.Country, filters)
	if err != nil {
		if restErr, ok := telco.AsRestError(err); ok {
			n.logger.Error("Provider API error during search", zap.Error(err))
			return messageResult(fmt.Sprintf("❌ Error searching numbers: _%s_", restErr.Message))
		}
		n.logger.Error("Unexpected error during search", zap.Error(err))
		return messageResult("❗ An unexpected error occurred while searching for numbers.")
	}

	if len(available) == 0 {
		return messageResult(fmt.Sprintf(
			"😕 No phone numbers found in `%s` matching your criteria:\n"+
				"   - Area Code: `%s`\n"+
				"   - Pattern: `%s`\n"+
				"   - Zip Code: `%s`",
			query.Country, orNA(filters.AreaCode), orNA(filters.Contains), orNA(filters.InPostalCode)))
	}

	return Result{Available: available}
}

func (n *numbers) Purchase(ctx context.Context, api telco.API, phoneNumber string) Result {
	n.logger.Info("Attempting to buy number", zap.String("phoneNumber", phoneNumber))

	purchased, err := api.CreateNumber(ctx, phoneNumber)
	if err != nil {
		if restErr, ok := telco.AsRestError(err); ok {
			n.logger.Error("Provider API error during purchase", zap.Error(err))
			msg := fmt.Sprintf("❌ Error buying number `%s`: _%s_", phoneNumber, restErr.Message)
			if restErr.Code == telco.CodeNumberUnavailable {
				msg += "\n   _This number might not be available, or there could be account restrictions._"
			}
			return messageResult(msg)
		}
		n.logger.Error("Unexpected error during purchase", zap.Error(err))
		return messageResult(fmt.Sprintf("❗ An unexpected error occurred while trying to buy `%s`.", phoneNumber))
	}

	return messageResult(fmt.Sprintf(
		"🎉 Successfully purchased number: *%s* (`%s`)\n   SID: `%s`",
		purchased.FriendlyName, purchased.PhoneNumber, purchased.SID))
}

func (n *numbers) ListOwned(ctx context.Context, api telco.API, query ListOwnedQuery) Result {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	n.logger.Info("Fetching owned numbers", zap.Int("limit", limit))

	owned, err := api.ListNumbers(ctx, telco.ListFilter{PageSize: limit})
	if err != nil {
		if restErr, ok := telco.AsRestError(err); ok {
			n.logger.Error("Provider API error listing numbers", zap.Error(err))
			return messageResult(fmt.Sprintf("❌ Error listing your numbers: _%s_", restErr.Message))
		}
		n.logger.Error("Unexpected error listing numbers", zap.Error(err))
		return messageResult("❗ An unexpected error occurred while listing your numbers.")
	}

	if len(owned) == 0 {
		return messageResult("ℹ️ You don't own any numbers yet.")
	}

	return Result{Owned: owned}
}

func (n *numbers) Release(ctx context.Context, api telco.API, phoneNumber string) Result {
	n.logger.Info("Attempting to release number", zap.String("phoneNumber", phoneNumber))

	// Look up the provider identifier first; deleting by a guessed identifier
	// could remove an unrelated resource.
	matches, err := api.ListNumbers(ctx, telco.ListFilter{PhoneNumber: phoneNumber, PageSize: 1})
	if err != nil {
		return n.releaseError(phoneNumber, err)
	}

	if len(matches) == 0 {
		return messageResult(fmt.Sprintf("❓ Number `%s` not found in your account.", phoneNumber))
	}

	if err := api.DeleteNumber(ctx, matches[0].SID); err != nil {
		return n.releaseError(phoneNumber, err)
	}

	return messageResult(fmt.Sprintf("🗑️ Successfully released number: `%s`", phoneNumber))
}

func (n *numbers) releaseError(phoneNumber string, err error) Result {
	if restErr, ok := telco.AsRestError(err); ok {
		n.logger.Error("Provider API error releasing number", zap.Error(err))
		return messageResult(fmt.Sprintf("❌ Error releasing number `%s`: _%s_", phoneNumber, restErr.Message))
	}
	n.logger.Error("Unexpected error releasing number", zap.Error(err))
	return messageResult(fmt.Sprintf("❗ An unexpected error occurred while releasing `%s`.", phoneNumber))
}

func (n *numbers) CheckSMS(ctx context.Context, api telco.API, query CheckSMSQuery) Result {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultSMSLimit
	}

	n.logger.Info("Checking SMS",
		zap.String("phoneNumber", query.PhoneNumber),
		zap.Int("limit", limit))

	// Confirm ownership before touching message history.
	owned, err := api.ListNumbers(ctx, telco.ListFilter{PhoneNumber: query.PhoneNumber, PageSize: 1})
	if err != nil {
		return n.checkSMSError(query.PhoneNumber, err)
	}

	if len(owned) == 0 {
		return messageResult(fmt.Sprintf(
			"🤔 You do not seem to own the number `%s`, or it's not a number in your account.",
			query.PhoneNumber))
	}

	messages, err := api.ListMessages(ctx, query.PhoneNumber, limit)
	if err != nil {
		return n.checkSMSError(query.PhoneNumber, err)
	}

	if len(messages) == 0 {
		return messageResult(fmt.Sprintf(
			"📪 No recent SMS messages found for `%s` (last %d).", query.PhoneNumber, limit))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "💬 Recent SMS for *%s* (last %d):\n\n", query.PhoneNumber, limit)
	for _, msg := range messages {
		direction := "➡️ To"
		if msg.Direction == "inbound" {
			direction = "⬅️ From"
		}

		sent := "N/A"
		if msg.DateSent != nil && !msg.DateSent.IsZero() {
			sent = msg.DateSent.UTC().Format("2006-01-02 15:04:05 UTC")
		}

		fmt.Fprintf(&b, "%s %s: `%s`\n   🗓️ _Sent: %s_\n   📜 Body: %s\n   🆔 SID: `%s`\n---\n",
			statusIndicator(msg.Status), direction, msg.From, sent, msg.Body, msg.SID)
	}

	return messageResult(b.String())
}

func (n *numbers) checkSMSError(phoneNumber string, err error) Result {
	if restErr, ok := telco.AsRestError(err); ok {
		n.logger.Error("Provider API error checking SMS", zap.Error(err))
		return messageResult(fmt.Sprintf("❌ Error checking SMS for `%s`: _%s_", phoneNumber, restErr.Message))
	}
	n.logger.Error("Unexpected error checking SMS", zap.Error(err))
	return messageResult(fmt.Sprintf("❗ An unexpected error occurred while checking SMS for `%s`.", phoneNumber))
}

// statusIndicator folds the provider's delivery status strings into the
// three classes shown to the user.
func statusIndicator(status string) string {
	switch status {
	case "delivered", "received", "sent":
		return "✅"
	case "queued", "accepted", "sending":
		return "⏳"
	default:
		return "❌"
	}
}
