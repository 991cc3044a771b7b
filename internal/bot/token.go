package bot

import "strings"

// Callback data prefixes. A button's callback payload is the prefix followed
// verbatim by the record's canonical phone number (or a menu sub-action
// name); the prefix is matched at position 0 only, so a payload may itself
// contain prefix characters.
const (
	PrefixBuy      = "buy_"
	PrefixRelease  = "release_"
	PrefixCheckSMS = "sms_"
	PrefixMenu     = "menu_"
)

type Action struct {
	Prefix  string
	Payload string
}

// Token builds an opaque callback token for a button.
func Token(prefix, payload string) string {
	return prefix + payload
}

// ParseToken recovers the action behind a callback payload. The payload is
// everything after the prefix, untouched.
func ParseToken(data string) (Action, bool) {
	for _, prefix := range []string{PrefixBuy, PrefixRelease, PrefixCheckSMS, PrefixMenu} {
		if strings.HasPrefix(data, prefix) {
			return Action{Prefix: prefix, Payload: data[len(prefix):]}, true
		}
	}
	return Action{}, false
}
