package client

import (
	"context"
	"net/http"
)

// SMSGateway - клиент внешнего шлюза отправки SMS
type SMSGateway struct {
	client *Client
	apiKey string
	sender string
}

type smsMessage struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Message string   `json:"message"`
}

func NewSMSGateway(baseURL string, apiKey string, sender string, httpClient HTTPClient) *SMSGateway {
	return &SMSGateway{
		client: NewClient(baseURL, httpClient),
		apiKey: apiKey,
		sender: sender,
	}
}

// Send - одна пакетная отправка на все номера; разбиение на получателей делает шлюз
func (g *SMSGateway) Send(ctx context.Context, phones []string, message string) error {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+g.apiKey)
	return g.client.Do(ctx, http.MethodPost, "/messages", headers, smsMessage{
		From:    g.sender,
		To:      phones,
		Message: message,
	}, nil)
}
