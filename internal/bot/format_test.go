package bot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehidihasan1/twixdbot/internal/service"
	"github.com/mehidihasan1/twixdbot/pkg/telco"
)

func TestFormatAvailable(t *testing.T) {
	result := service.Result{Available: []telco.AvailableNumber{
		{PhoneNumber: "+14155550100", FriendlyName: "(415) 555-0100", Region: "CA", Locality: "San Francisco"},
		{PhoneNumber: "+14155550101", FriendlyName: "(415) 555-0101", Region: "CA", Locality: "Oakland"},
	}}

	replies := formatAvailable(result)

	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "Found Available Numbers")
	assert.Contains(t, replies[0].Text, "_Region:_ CA, _Locality:_ San Francisco")
	assert.Contains(t, replies[0].Text, "Select a number to buy")

	require.Len(t, replies[0].Keyboard, 2)
	assert.Equal(t, "buy_+14155550100", replies[0].Keyboard[0][0].Data)
	assert.Equal(t, "💰 Buy (415) 555-0100", replies[0].Keyboard[0][0].Label)
}

func TestFormatOwned(t *testing.T) {
	result := service.Result{Owned: []telco.OwnedNumber{
		{SID: "PN1", PhoneNumber: "+15551230000", FriendlyName: "(555) 123-0000"},
	}}

	replies := formatOwned(result)

	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "Your Numbers")
	assert.Contains(t, replies[0].Text, "_SID:_ `PN1`")

	require.Len(t, replies[0].Keyboard, 1)
	require.Len(t, replies[0].Keyboard[0], 2)
	assert.Equal(t, "release_+15551230000", replies[0].Keyboard[0][0].Data)
	assert.Equal(t, "sms_+15551230000", replies[0].Keyboard[0][1].Data)
}

func TestFormatMessageResult(t *testing.T) {
	replies := formatOwned(service.Result{Message: "ℹ️ You don't own any numbers yet."})

	require.Len(t, replies, 1)
	assert.Empty(t, replies[0].Keyboard)
	assert.Equal(t, "ℹ️ You don't own any numbers yet.", replies[0].Text)
}

func TestFormatOwned_SplitsOversizedText(t *testing.T) {
	owned := make([]telco.OwnedNumber, 0, 120)
	for i := 0; i < 120; i++ {
		owned = append(owned, telco.OwnedNumber{
			SID:          fmt.Sprintf("PN%032d", i),
			PhoneNumber:  fmt.Sprintf("+1555123%04d", i),
			FriendlyName: fmt.Sprintf("(555) 123-%04d", i),
		})
	}

	replies := formatOwned(service.Result{Owned: owned})

	require.Len(t, replies, 2)
	assert.LessOrEqual(t, len(replies[1].Text), MaxMessageLength)
	assert.Empty(t, replies[0].Keyboard)
	assert.Len(t, replies[1].Keyboard, 120)
	assert.True(t, strings.HasPrefix(replies[1].Text, "👇"))

	// Nothing is truncated: every record still appears in the text part.
	assert.Contains(t, replies[0].Text, "PN"+fmt.Sprintf("%032d", 119))
}
