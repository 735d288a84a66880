// Package payment содержит клиента внешнего платежного шлюза.
// Шлюз говорит на Stripe-совместимом протоколе payment intents.
package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config содержит настройки клиента шлюза
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client реализует service.PaymentGateway поверх HTTP API шлюза
type Client struct {
	client *resty.Client
}

// NewClient создает нового клиента платежного шлюза
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey)

	return &Client{client: cli}
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// CreateIntent создает payment intent на указанную сумму в минимальных
// единицах валюты и возвращает client secret шлюза
func (c *Client) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (string, error) {
	var out intentResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"amount":                 strconv.FormatInt(amountMinorUnits, 10),
			"currency":               currency,
			"payment_method_types[]": "card",
		}).
		SetResult(&out).
		Post("/v1/payment_intents")
	if err != nil {
		return "", fmt.Errorf("create intent request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("payment gateway: http %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	if out.ClientSecret == "" {
		return "", errors.New("payment gateway: empty client secret")
	}

	return out.ClientSecret, nil
}
