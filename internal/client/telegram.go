package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/imroc/req/v3"
	"github.com/oripovb/orderpay/internal/entity"
	inerr "github.com/oripovb/orderpay/internal/errors"
)

// Telegram — адаптер Bot API. Переводит вызовы ядра в запросы к платформе
// и обратно, бизнес-логики не содержит. Повторных попыток на этом уровне нет,
// решение о повторе принимает вызывающая сторона.
type Telegram struct {
	req     *req.Client
	token   string
	baseURL string
}

const defaultBaseURL = "https://api.telegram.org"

// APIError — отказ платформы. Description сохраняется дословно,
// чтобы оператор видел причину в исходном виде.
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error %d: %s", e.Code, e.Description)
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	ErrorCode   int             `json:"error_code"`
	Description string          `json:"description"`
}

func NewTelegram(token string) (*Telegram, error) {
	if token == "" {
		return nil, errors.New("telegram bot token is not configured")
	}

	return &Telegram{
		req: req.C().
			SetBaseURL(defaultBaseURL).
			SetTimeout(10 * time.Second),
		token:   token,
		baseURL: defaultBaseURL,
	}, nil
}

// SendMessage отправляет текст в чат и возвращает result платформы как есть.
func (c *Telegram) SendMessage(ctx context.Context, chatID int64, text string) (json.RawMessage, error) {
	return c.call(ctx, "sendMessage", map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "Markdown",
	})
}

// ResolveFileURL получает у платформы путь к файлу по его идентификатору
// и собирает постоянную ссылку для скачивания.
func (c *Telegram) ResolveFileURL(ctx context.Context, fileID string) (string, error) {
	result, err := c.call(ctx, "getFile", map[string]any{"file_id": fileID})
	if err != nil {
		return "", fmt.Errorf("%w: %s", inerr.ErrFileResolution, err)
	}

	file := struct {
		FilePath string `json:"file_path"`
	}{}
	if err := json.Unmarshal(result, &file); err != nil || file.FilePath == "" {
		return "", fmt.Errorf("%w: empty file path in response", inerr.ErrFileResolution)
	}

	return fmt.Sprintf("%s/file/bot%s/%s", c.baseURL, c.token, file.FilePath), nil
}

func (c *Telegram) SetWebhook(ctx context.Context, url string) (json.RawMessage, error) {
	return c.call(ctx, "setWebhook", map[string]any{"url": url})
}

func (c *Telegram) DeleteWebhook(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, "deleteWebhook", nil)
}

func (c *Telegram) GetWebhookInfo(ctx context.Context) (entity.WebhookInfo, error) {
	info := entity.WebhookInfo{}
	result, err := c.call(ctx, "getWebhookInfo", nil)
	if err != nil {
		return info, err
	}

	err = json.Unmarshal(result, &info)

	return info, err
}

func (c *Telegram) call(ctx context.Context, method string, body any) (json.RawMessage, error) {
	respBody := apiResponse{}
	request := c.req.R().
		SetContext(ctx).
		SetSuccessResult(&respBody).
		SetErrorResult(&respBody).
		SetPathParam("token", c.token).
		SetPathParam("method", method)
	if body != nil {
		request.SetBody(body)
	}

	resp, err := request.Post("/bot{token}/{method}")
	if err != nil {
		return nil, err
	}

	if !respBody.OK {
		if respBody.ErrorCode != 0 || respBody.Description != "" {
			return nil, &APIError{Code: respBody.ErrorCode, Description: respBody.Description}
		}

		return nil, fmt.Errorf("server responded with status code %d", resp.StatusCode)
	}

	return respBody.Result, nil
}
