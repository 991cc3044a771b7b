package telco_test

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mehidihasan1/twixdbot/pkg/mocks"
	"github.com/mehidihasan1/twixdbot/pkg/telco"
)

const (
	testSID   = "AC" + "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"
	testToken = "auth-token"
)

var cfg = telco.Config{
	BaseURL: "https://api.telco.test",
	Timeout: 30 * time.Second,
}

func authHeaders() map[string]string {
	credentials := base64.StdEncoding.EncodeToString([]byte(testSID + ":" + testToken))
	return map[string]string{"Authorization": "Basic " + credentials}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestClient_FetchAccount(t *testing.T) {
	accountURL := "https://api.telco.test/2010-04-01/Accounts/" + testSID + ".json"

	t.Run("successful probe", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := telco.NewClient(cfg, testSID, testToken, mockClient)

		body := `{"sid": "` + testSID + `", "friendly_name": "My Account", "status": "active"}`
		mockClient.On("Get", context.Background(), accountURL, authHeaders()).
			Return(jsonResponse(200, body), nil)

		account, err := client.FetchAccount(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, testSID, account.SID)
		assert.Equal(t, "active", account.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := telco.NewClient(cfg, testSID, testToken, mockClient)

		body := `{"code": 20003, "message": "Authentication Error - invalid username", "status": 401}`
		mockClient.On("Get", context.Background(), accountURL, authHeaders()).
			Return(jsonResponse(401, body), nil)

		_, err := client.FetchAccount(context.Background())

		assert.Error(t, err)
		assert.True(t, telco.IsAuthError(err))

		restErr, ok := telco.AsRestError(err)
		assert.True(t, ok)
		assert.Equal(t, 20003, restErr.Code)
	})

	t.Run("timeout", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := telco.NewClient(cfg, testSID, testToken, mockClient)

		mockClient.On("Get", context.Background(), accountURL, authHeaders()).
			Return((*http.Response)(nil), context.DeadlineExceeded)

		_, err := client.FetchAccount(context.Background())

		assert.Equal(t, telco.ErrTimeout, err)
	})

	t.Run("undecodable error body", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := telco.NewClient(cfg, testSID, testToken, mockClient)

		mockClient.On("Get", context.Background(), accountURL, authHeaders()).
			Return(jsonResponse(502, "<html>Bad Gateway</html>"), nil)

		_, err := client.FetchAccount(context.Background())

		assert.Equal(t, telco.ErrServerError, err)
	})
}

func TestClient_SearchAvailable(t *testing.T) {
	mockClient := &mocks.HTTPClient{}
	client := telco.NewClient(cfg, testSID, testToken, mockClient)

	searchURL := "https://api.telco.test/2010-04-01/Accounts/" + testSID +
		"/AvailablePhoneNumbers/US/Local.json?AreaCode=415&Contains=SHOP&InPostalCode=94107&PageSize=5"

	body := `{"available_phone_numbers": [
		{"phone_number": "+14155557467", "friendly_name": "(415) 555-7467", "region": "CA", "locality": "San Francisco"}
	]}`
	mockClient.On("Get", context.Background(), searchURL, authHeaders()).
		Return(jsonResponse(200, body), nil)

	numbers, err := client.SearchAvailable(context.Background(), "US", telco.SearchFilters{
		AreaCode:     "415",
		Contains:     "SHOP",
		InPostalCode: "94107",
		PageSize:     5,
	})

	assert.NoError(t, err)
	assert.Len(t, numbers, 1)
	assert.Equal(t, "+14155557467", numbers[0].PhoneNumber)
	assert.Equal(t, "San Francisco", numbers[0].Locality)
	mockClient.AssertExpectations(t)
}

func TestClient_CreateNumber(t *testing.T) {
	mockClient := &mocks.HTTPClient{}
	client := telco.NewClient(cfg, testSID, testToken, mockClient)

	createURL := "https://api.telco.test/2010-04-01/Accounts/" + testSID + "/IncomingPhoneNumbers.json"

	headers := authHeaders()
	headers["Content-Type"] = "application/x-www-form-urlencoded"

	formMatcher := mock.MatchedBy(func(body io.Reader) bool {
		raw, err := io.ReadAll(body)
		return err == nil && string(raw) == "PhoneNumber=%2B15551230000"
	})

	body := `{"sid": "PN123", "phone_number": "+15551230000", "friendly_name": "(555) 123-0000"}`
	mockClient.On("Post", context.Background(), createURL, formMatcher, headers).
		Return(jsonResponse(201, body), nil)

	number, err := client.CreateNumber(context.Background(), "+15551230000")

	assert.NoError(t, err)
	assert.Equal(t, "PN123", number.SID)
	mockClient.AssertExpectations(t)
}

func TestClient_ListNumbers(t *testing.T) {
	mockClient := &mocks.HTTPClient{}
	client := telco.NewClient(cfg, testSID, testToken, mockClient)

	listURL := "https://api.telco.test/2010-04-01/Accounts/" + testSID +
		"/IncomingPhoneNumbers.json?PageSize=1&PhoneNumber=%2B15551230000"

	body := `{"incoming_phone_numbers": [{"sid": "PN123", "phone_number": "+15551230000"}]}`
	mockClient.On("Get", context.Background(), listURL, authHeaders()).
		Return(jsonResponse(200, body), nil)

	numbers, err := client.ListNumbers(context.Background(), telco.ListFilter{PhoneNumber: "+15551230000", PageSize: 1})

	assert.NoError(t, err)
	assert.Len(t, numbers, 1)
	assert.Equal(t, "PN123", numbers[0].SID)
}

func TestClient_DeleteNumber(t *testing.T) {
	deleteURL := "https://api.telco.test/2010-04-01/Accounts/" + testSID + "/IncomingPhoneNumbers/PN123.json"

	t.Run("deleted", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := telco.NewClient(cfg, testSID, testToken, mockClient)

		mockClient.On("Delete", context.Background(), deleteURL, authHeaders()).
			Return(jsonResponse(204, ""), nil)

		assert.NoError(t, client.DeleteNumber(context.Background(), "PN123"))
	})

	t.Run("provider fault", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := telco.NewClient(cfg, testSID, testToken, mockClient)

		body := `{"code": 20404, "message": "The requested resource was not found", "status": 404}`
		mockClient.On("Delete", context.Background(), deleteURL, authHeaders()).
			Return(jsonResponse(404, body), nil)

		err := client.DeleteNumber(context.Background(), "PN123")

		restErr, ok := telco.AsRestError(err)
		assert.True(t, ok)
		assert.Equal(t, 20404, restErr.Code)
	})
}

func TestClient_ListMessages(t *testing.T) {
	mockClient := &mocks.HTTPClient{}
	client := telco.NewClient(cfg, testSID, testToken, mockClient)

	messagesURL := "https://api.telco.test/2010-04-01/Accounts/" + testSID +
		"/Messages.json?PageSize=5&To=%2B15551230000"

	body := `{"messages": [
		{"sid": "SM1", "from": "+15559990000", "to": "+15551230000", "body": "hello",
		 "status": "received", "direction": "inbound", "date_sent": "Tue, 20 Apr 2021 14:00:00 +0000"},
		{"sid": "SM2", "from": "+15559990001", "to": "+15551230000", "body": "pending",
		 "status": "queued", "direction": "inbound", "date_sent": null}
	]}`
	mockClient.On("Get", context.Background(), messagesURL, authHeaders()).
		Return(jsonResponse(200, body), nil)

	messages, err := client.ListMessages(context.Background(), "+15551230000", 5)

	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, "hello", messages[0].Body)
	assert.NotNil(t, messages[0].DateSent)
	assert.Equal(t, 2021, messages[0].DateSent.Year())
	assert.Nil(t, messages[1].DateSent)
}
