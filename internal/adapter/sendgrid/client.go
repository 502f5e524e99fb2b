package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Message is one outbound email.
type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// Receipt carries the provider's acknowledgement of an accepted message.
type Receipt struct {
	MessageID string
}

// SendError reports a rejected send with the provider's detail.
type SendError struct {
	StatusCode int
	Body       string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("mail transport rejected message: status %d: %s", e.StatusCode, e.Body)
}

// Transport exposes the mail sending operation. The dispatcher does not
// depend on which provider implements it.
type Transport interface {
	Send(ctx context.Context, msg Message) (*Receipt, error)
}

// HTTPClient implements Transport against a SendGrid v3 style API.
type HTTPClient struct {
	baseURL    *url.URL
	apiKey     string
	fromEmail  string
	fromName   string
	httpClient *http.Client
	logger     *slog.Logger
}

type payload struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

type personalization struct {
	To []address `json:"to"`
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// NewHTTPClient creates the mail transport with default timeout.
func NewHTTPClient(baseURL, apiKey, fromEmail, fromName string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse mail api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("mail api url must be absolute")
	}
	return &HTTPClient{
		baseURL:   parsed,
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Send submits the message to the mail API.
func (c *HTTPClient) Send(ctx context.Context, msg Message) (*Receipt, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v3/mail/send")

	body, err := json.Marshal(payload{
		Personalizations: []personalization{{To: []address{{Email: msg.To, Name: msg.ToName}}}},
		From:             address{Email: c.fromEmail, Name: c.fromName},
		Subject:          msg.Subject,
		Content:          []content{{Type: "text/plain", Value: msg.Body}},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return &Receipt{MessageID: resp.Header.Get("X-Message-Id")}, nil
	}

	detail, _ := io.ReadAll(resp.Body)
	c.logger.Error("mail send failed",
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(detail)),
	)
	return nil, &SendError{StatusCode: resp.StatusCode, Body: string(detail)}
}
