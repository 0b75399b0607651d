package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const maxFeedbackResponseBytes = 64 << 10

// FeedbackClient forwards user feedback to an external tracker, which emails it on.
type FeedbackClient struct {
	http     *http.Client
	url      string
	appName  string
	password string
}

type feedbackRequest struct {
	AppName  string `json:"appName"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Password string `json:"password"`
}

type feedbackResponse struct {
	ID      *string `json:"id"`
	Message *string `json:"message"`
}

func (c *FeedbackClient) Send(ctx context.Context, email string, message string) error {
	if _, err := url.Parse(c.url); err != nil {
		return fmt.Errorf("failed to parse feedback URL: %w", err)
	}

	payload, err := json.Marshal(feedbackRequest{
		AppName:  c.appName,
		Email:    email,
		Message:  message,
		Password: c.password,
	})
	if err != nil {
		return fmt.Errorf("failed to encode feedback: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create feedback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute feedback request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedbackResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read feedback response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d from feedback api: %s", resp.StatusCode, body)
	}

	var parsed feedbackResponse
	if err = json.Unmarshal(body, &parsed); err != nil || parsed.ID == nil || parsed.Message == nil {
		return fmt.Errorf("got unexpected response from feedback api: %s", body)
	}
	return nil
}

func NewFeedbackClient(httpClient *http.Client, feedbackURL string, appName string, password string) *FeedbackClient {
	return &FeedbackClient{http: httpClient, url: feedbackURL, appName: appName, password: password}
}
