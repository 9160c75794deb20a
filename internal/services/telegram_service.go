package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const telegramAPI = "https://api.telegram.org"

// TelegramService posts staff alerts to a Telegram chat.
type TelegramService struct {
	baseURL     string
	botToken    string
	adminChatID string
	client      *http.Client
	log         *zap.Logger
}

// NewTelegramService creates a new TelegramService. An empty bot token or
// chat id turns every send into a no-op.
func NewTelegramService(botToken, adminChatID string, log *zap.Logger) *TelegramService {
	if log == nil {
		log = zap.NewNop()
	}
	return &TelegramService{
		baseURL:     telegramAPI,
		botToken:    botToken,
		adminChatID: adminChatID,
		client:      &http.Client{Timeout: 10 * time.Second},
		log:         log,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends an HTML-formatted message to chatID.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		s.log.Debug("telegram bot token not configured")
		return nil
	}

	body, err := json.Marshal(telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.botToken)
	resp, err := s.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}
	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// EnquiryNotification is the staff-facing summary of a new enquiry.
type EnquiryNotification struct {
	EnquiryID string
	FirstName string
	LastName  string
	Contact   string
	Email     string
	SMSSent   bool
}

// NotifyNewEnquiry tells the admin chat about a new enquiry.
func (s *TelegramService) NotifyNewEnquiry(n EnquiryNotification) error {
	if s.adminChatID == "" {
		return nil
	}

	smsStatus := "sent"
	if !n.SMSSent {
		smsStatus = "failed"
	}

	message := fmt.Sprintf(`<b>New enquiry</b>
<b>Name:</b> %s %s
<b>Phone:</b> %s
<b>Email:</b> %s
<b>Confirmation SMS:</b> %s
<code>%s</code>`,
		html.EscapeString(n.FirstName),
		html.EscapeString(n.LastName),
		html.EscapeString(n.Contact),
		html.EscapeString(n.Email),
		smsStatus,
		n.EnquiryID,
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}
