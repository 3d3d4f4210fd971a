package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const webhookUsername = "Gokkan Keeper"

type Client struct {
	HttpClient *http.Client
	WebhookUrl string
}

type webhookPayload struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// SendMessage posts a plain-text message to the configured Discord webhook.
func (c Client) SendMessage(content string) error {
	payload, err := json.Marshal(webhookPayload{
		Username: webhookUsername,
		Content:  content,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.WebhookUrl, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		responseBytes, err := io.ReadAll(response.Body)
		if err != nil {
			return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
		}
		return fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	return nil
}
