package eskiz

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const sendPath = "/message/sms/send"

// Client is an Eskiz.uz SMS gateway client. Eskiz expects the subscriber
// number without the leading plus.
type Client struct {
	baseURL    string
	token      string
	from       string
	httpClient *http.Client
}

func NewClient(baseURL string, token string, from string) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("empty base url")
	}
	if token == "" {
		return nil, errors.New("empty api token")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		from:    from,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

type sendResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *Client) Send(ctx context.Context, phoneNumber string, text string) error {
	form := url.Values{}
	form.Set("mobile_phone", strings.TrimPrefix(phoneNumber, "+"))
	form.Set("message", text)
	form.Set("from", c.from)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "build sms request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "send sms request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("sms gateway returned status %d", resp.StatusCode)
	}

	var body sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errors.Wrap(err, "decode sms response")
	}

	if body.Status == "error" {
		return errors.Errorf("sms gateway rejected message: %s", body.Message)
	}

	return nil
}
