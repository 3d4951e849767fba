package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// TelegramConfig carries the bot API settings. APIURL already ends with
// "/bot" so appending the token yields the method base.
type TelegramConfig struct {
	APIURL string
	Token  string
	ChatID string
}

// Telegram delivers codes through a bot's sendMessage call. The recipient is
// a chat id; a blank recipient falls back to the configured default chat.
type Telegram struct {
	cfg    TelegramConfig
	client *http.Client
}

func NewTelegram(cfg TelegramConfig, client *http.Client) *Telegram {
	if client == nil {
		client = http.DefaultClient
	}

	return &Telegram{cfg: cfg, client: client}
}

func (t *Telegram) SendCode(ctx context.Context, recipient, code string) error {
	chatID := recipient
	if chatID == "" {
		chatID = t.cfg.ChatID
	}

	endpoint := fmt.Sprintf("%s%s/sendMessage?chat_id=%s&text=%s",
		t.cfg.APIURL,
		t.cfg.Token,
		url.QueryEscape(chatID),
		url.QueryEscape("Your OTP code is: "+code),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("telegram request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	defer resp.Body.Close()

	//nolint:errcheck // drain so the connection can be reused
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram send: unexpected status %d", resp.StatusCode)
	}

	return nil
}
