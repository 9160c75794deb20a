package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/numetry/internal/utils"
)

const smsSentMessage = "SMS sent successfully."

// TwilioConfig holds the messaging account credentials.
type TwilioConfig struct {
	BaseURL    string
	AccountSID string
	AuthToken  string
	FromNumber string
}

// TwilioSMSService sends text messages through the Twilio REST API.
type TwilioSMSService struct {
	cfg    TwilioConfig
	client *http.Client
	log    *zap.Logger
}

// NewTwilioSMSService constructs a TwilioSMSService.
func NewTwilioSMSService(cfg TwilioConfig, log *zap.Logger) *TwilioSMSService {
	if log == nil {
		log = zap.NewNop()
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &TwilioSMSService{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
		log:    log,
	}
}

type twilioMessage struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type twilioError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SendText delivers body to phone. Failures are reported through the
// returned flag and message, never as an error.
func (s *TwilioSMSService) SendText(ctx context.Context, phone, body string) (bool, string) {
	sid, err := s.send(ctx, utils.NormalizePhone(phone), body)
	if err != nil {
		s.log.Warn("sms send failed", zap.Error(err))
		return false, fmt.Sprintf("Error sending SMS: %v", err)
	}
	s.log.Info("sms sent", zap.String("message_sid", sid))
	return true, smsSentMessage
}

func (s *TwilioSMSService) send(ctx context.Context, to, body string) (string, error) {
	if s.cfg.AccountSID == "" || s.cfg.AuthToken == "" || s.cfg.FromNumber == "" {
		return "", errors.New("sms transport not configured")
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.cfg.FromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.cfg.BaseURL, url.PathEscape(s.cfg.AccountSID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(s.cfg.AccountSID, s.cfg.AuthToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr twilioError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return "", fmt.Errorf("twilio error %d: %s", apiErr.Code, apiErr.Message)
		}
		return "", fmt.Errorf("twilio returned status %d", resp.StatusCode)
	}

	var msg twilioMessage
	if err := json.Unmarshal(respBody, &msg); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return msg.SID, nil
}
