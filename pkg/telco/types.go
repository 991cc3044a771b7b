package telco

import (
	"strings"
	"time"
)

type Account struct {
	SID          string `json:"sid"`
	FriendlyName string `json:"friendly_name"`
	Status       string `json:"status"`
}

// AvailableNumber is a purchasable number returned by a search.
type AvailableNumber struct {
	PhoneNumber  string `json:"phone_number"`
	FriendlyName string `json:"friendly_name"`
	Region       string `json:"region"`
	Locality     string `json:"locality"`
}

// OwnedNumber is a number already provisioned on the account.
type OwnedNumber struct {
	SID          string `json:"sid"`
	PhoneNumber  string `json:"phone_number"`
	FriendlyName string `json:"friendly_name"`
}

type Message struct {
	SID       string `json:"sid"`
	From      string `json:"from"`
	To        string `json:"to"`
	Body      string `json:"body"`
	Status    string `json:"status"`
	Direction string `json:"direction"`
	DateSent  *Time  `json:"date_sent"`
}

// Time unmarshals the provider's RFC 2822 timestamps, which may be null for
// messages not yet sent.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC1123Z, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

type searchResponse struct {
	AvailablePhoneNumbers []AvailableNumber `json:"available_phone_numbers"`
}

type listNumbersResponse struct {
	IncomingPhoneNumbers []OwnedNumber `json:"incoming_phone_numbers"`
}

type listMessagesResponse struct {
	Messages []Message `json:"messages"`
}
