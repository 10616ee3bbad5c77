package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/frenzeldk/shopify-tools/internal/config"
)

const (
	iconError   = "❌"
	iconSuccess = "✅"
)

type telegramNotifier struct {
	creds config.TelegramBotConfig
}

type telegramRequest struct {
	ChatId string `json:"chat_id"`
	Text   string `json:"text"`
}

// newTelegramNotifier returns a disabled notifier (nil) when credentials
// are missing; send on a nil notifier is a no-op.
func newTelegramNotifier(creds config.TelegramBotConfig) *telegramNotifier {
	if creds.ChatId == "" || creds.Token == "" {
		return nil
	}
	return &telegramNotifier{creds: creds}
}

func (t *telegramNotifier) send(icon, level, value string) {
	if t == nil {
		return
	}
	v := strings.TrimSpace(value)
	if v == "" {
		v = "-"
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.creds.Token)
	reqBody := telegramRequest{
		ChatId: t.creds.ChatId,
		Text:   fmt.Sprintf("%s %s: %s", icon, level, v),
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(bodyBytes))
	if err != nil {
		return
	}
	defer resp.Body.Close()
}
