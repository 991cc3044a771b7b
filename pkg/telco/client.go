package telco

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mehidihasan1/twixdbot/pkg/httpclient"
)

// API is the subset of the provider's REST surface the bot consumes. It is
// satisfied by Client and mocked in tests.
type API interface {
	FetchAccount(ctx context.Context) (Account, error)
	SearchAvailable(ctx context.Context, country string, filters SearchFilters) ([]AvailableNumber, error)
	CreateNumber(ctx context.Context, phoneNumber string) (OwnedNumber, error)
	ListNumbers(ctx context.Context, filter ListFilter) ([]OwnedNumber, error)
	DeleteNumber(ctx context.Context, numberSID string) error
	ListMessages(ctx context.Context, to string, limit int) ([]Message, error)
}

type SearchFilters struct {
	AreaCode     string
	Contains     string
	InPostalCode string
	PageSize     int
}

type ListFilter struct {
	PhoneNumber string
	PageSize    int
}

var _ API = (*Client)(nil)

// Client talks to one provider account. It is cheap to construct and holds no
// connection state beyond the shared HTTP client.
type Client struct {
	cfg        Config
	accountSID string
	authToken  string
	client     httpclient.HTTPClient
}

func NewClient(cfg Config, accountSID, authToken string, client httpclient.HTTPClient) *Client {
	return &Client{cfg: cfg, accountSID: accountSID, authToken: authToken, client: client}
}

func (c *Client) accountURL(path string) string {
	return c.cfg.BaseURL + "/2010-04-01/Accounts/" + c.accountSID + path
}

func (c *Client) headers() map[string]string {
	credentials := base64.StdEncoding.EncodeToString([]byte(c.accountSID + ":" + c.authToken))
	return map[string]string{"Authorization": "Basic " + credentials}
}

func (c *Client) FetchAccount(ctx context.Context) (Account, error) {
	resp, err := c.client.Get(ctx, c.accountURL(".json"), c.headers())
	if err != nil {
		return Account{}, mapTransportError(err)
	}
	defer resp.Body.Close()

	var account Account
	if err := decodeResponse(resp, &account); err != nil {
		return Account{}, err
	}

	return account, nil
}

func (c *Client) SearchAvailable(ctx context.Context, country string, filters SearchFilters) ([]AvailableNumber, error) {
	query := url.Values{}
	if filters.AreaCode != "" {
		query.Set("AreaCode", filters.AreaCode)
	}
	if filters.Contains != "" {
		query.Set("Contains", filters.Contains)
	}
	if filters.InPostalCode != "" {
		query.Set("InPostalCode", filters.InPostalCode)
	}
	if filters.PageSize > 0 {
		query.Set("PageSize", strconv.Itoa(filters.PageSize))
	}

	endpoint := c.accountURL("/AvailablePhoneNumbers/" + country + "/Local.json")
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	resp, err := c.client.Get(ctx, endpoint, c.headers())
	if err != nil {
		return nil, mapTransportError(err)
	}
	defer resp.Body.Close()

	var result searchResponse
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.AvailablePhoneNumbers, nil
}

func (c *Client) CreateNumber(ctx context.Context, phoneNumber string) (OwnedNumber, error) {
	form := url.Values{}
	form.Set("PhoneNumber", phoneNumber)

	headers := c.headers()
	headers["Content-Type"] = "application/x-www-form-urlencoded"

	resp, err := c.client.Post(ctx, c.accountURL("/IncomingPhoneNumbers.json"), strings.NewReader(form.Encode()), headers)
	if err != nil {
		return OwnedNumber{}, mapTransportError(err)
	}
	defer resp.Body.Close()

	var number OwnedNumber
	if err := decodeResponse(resp, &number); err != nil {
		return OwnedNumber{}, err
	}

	return number, nil
}

func (c *Client) ListNumbers(ctx context.Context, filter ListFilter) ([]OwnedNumber, error) {
	query := url.Values{}
	if filter.PhoneNumber != "" {
		query.Set("PhoneNumber", filter.PhoneNumber)
	}
	if filter.PageSize > 0 {
		query.Set("PageSize", strconv.Itoa(filter.PageSize))
	}

	endpoint := c.accountURL("/IncomingPhoneNumbers.json")
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	resp, err := c.client.Get(ctx, endpoint, c.headers())
	if err != nil {
		return nil, mapTransportError(err)
	}
	defer resp.Body.Close()

	var result listNumbersResponse
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.IncomingPhoneNumbers, nil
}

func (c *Client) DeleteNumber(ctx context.Context, numberSID string) error {
	resp, err := c.client.Delete(ctx, c.accountURL("/IncomingPhoneNumbers/"+numberSID+".json"), c.headers())
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return decodeError(resp)
}

func (c *Client) ListMessages(ctx context.Context, to string, limit int) ([]Message, error) {
	query := url.Values{}
	query.Set("To", to)
	if limit > 0 {
		query.Set("PageSize", strconv.Itoa(limit))
	}

	resp, err := c.client.Get(ctx, c.accountURL("/Messages.json")+"?"+query.Encode(), c.headers())
	if err != nil {
		return nil, mapTransportError(err)
	}
	defer resp.Body.Close()

	var result listMessagesResponse
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Messages, nil
}

func mapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrTimeout
	}
	return ErrNetworkError
}

func decodeResponse(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding error: %w", err)
	}

	return nil
}

func decodeError(resp *http.Response) error {
	var restErr Error
	if err := json.NewDecoder(resp.Body).Decode(&restErr); err != nil || restErr.Message == "" {
		return ErrServerError
	}
	if restErr.Status == 0 {
		restErr.Status = resp.StatusCode
	}
	return &restErr
}
