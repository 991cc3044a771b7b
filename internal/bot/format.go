package bot

import (
	"fmt"
	"strings"

	"github.com/mehidihasan1/twixdbot/internal/service"
)

// MaxMessageLength is the transport's per-message character ceiling. When a
// rendered list would cross it, the text goes out on its own and the
// keyboard rides on a short follow-up message instead of truncating content.
const MaxMessageLength = 4096

func formatAvailable(result service.Result) []Reply {
	if result.IsMessage() {
		return reply(result.Message)
	}

	var b strings.Builder
	b.WriteString("✅ *Found Available Numbers:*\n\n")

	keyboard := make([][]Choice, 0, len(result.Available))
	for _, number := range result.Available {
		fmt.Fprintf(&b, "📞 *%s* (`%s`)\n   _Region:_ %s, _Locality:_ %s\n---\n",
			number.FriendlyName, number.PhoneNumber, number.Region, number.Locality)
		keyboard = append(keyboard, []Choice{{
			Label: "💰 Buy " + number.FriendlyName,
			Data:  Token(PrefixBuy, number.PhoneNumber),
		}})
	}

	return splitReply(b.String(), "👇 Select a number to buy:", keyboard)
}

func formatOwned(result service.Result) []Reply {
	if result.IsMessage() {
		return reply(result.Message)
	}

	var b strings.Builder
	b.WriteString("🌟 *Your Numbers:*\n\n")

	keyboard := make([][]Choice, 0, len(result.Owned))
	for _, number := range result.Owned {
		fmt.Fprintf(&b, "📞 *%s* (`%s`)\n   _SID:_ `%s`\n---\n",
			number.FriendlyName, number.PhoneNumber, number.SID)
		keyboard = append(keyboard, []Choice{
			{Label: "♻️ Release", Data: Token(PrefixRelease, number.PhoneNumber)},
			{Label: "💬 Check SMS", Data: Token(PrefixCheckSMS, number.PhoneNumber)},
		})
	}

	return splitReply(b.String(), "👇 Manage your numbers:", keyboard)
}

func splitReply(text, footer string, keyboard [][]Choice) []Reply {
	full := text + "\n" + footer
	if len(full) > MaxMessageLength {
		return []Reply{
			{Text: text},
			{Text: footer, Keyboard: keyboard},
		}
	}
	return []Reply{{Text: full, Keyboard: keyboard}}
}
