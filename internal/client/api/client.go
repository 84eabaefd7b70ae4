package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/roster/internal/models"
	"github.com/iudanet/roster/pkg/api"
)

// DefaultTimeout таймаут HTTP клиента по умолчанию
const DefaultTimeout = 30 * time.Second

// ClientAPI определяет операции над ресурсом characters
type ClientAPI interface {
	FetchAll(ctx context.Context) ([]models.Character, error)
	FetchOne(ctx context.Context, id string) (*models.Character, error)
	CreateOne(ctx context.Context, draft models.Character) (*models.Character, error)
	UpdateOne(ctx context.Context, id string, c models.Character) (*models.Character, error)
	DeleteOne(ctx context.Context, id string) error
}

var _ ClientAPI = (*Client)(nil)

// Client представляет HTTP клиент для ресурса characters.
// Каждый вызов выполняется ровно один раз, без повторов.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент.
// timeout <= 0 означает DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// FetchAll получает всю коллекцию.
// Любая ошибка, включая 404, возвращается как *RequestFailedError.
func (c *Client) FetchAll(ctx context.Context) ([]models.Character, error) {
	var resp []models.Character
	if err := c.doRequest(ctx, http.MethodGet, api.CharactersPath, nil, &resp); err != nil {
		return nil, requestFailed("fetch all", err)
	}
	if resp == nil {
		resp = []models.Character{}
	}
	return resp, nil
}

// FetchOne получает одного персонажа
func (c *Client) FetchOne(ctx context.Context, id string) (*models.Character, error) {
	var resp models.Character
	if err := c.doRequest(ctx, http.MethodGet, api.CharacterPath(id), nil, &resp); err != nil {
		return nil, classify("fetch one", id, err)
	}
	return &resp, nil
}

// CreateOne создает персонажа из черновика и возвращает запись с ID от сервера.
// ID черновика на сервер не отправляется.
func (c *Client) CreateOne(ctx context.Context, draft models.Character) (*models.Character, error) {
	var resp models.Character
	if err := c.doRequest(ctx, http.MethodPost, api.CharactersPath, draft.AsDraft(), &resp); err != nil {
		return nil, requestFailed("create", err)
	}
	if resp.ID == "" {
		return nil, requestFailed("create", errors.New("server returned character without _id"))
	}
	return &resp, nil
}

// UpdateOne заменяет персонажа и возвращает итоговую запись сервера
func (c *Client) UpdateOne(ctx context.Context, id string, ch models.Character) (*models.Character, error) {
	var resp models.Character
	if err := c.doRequest(ctx, http.MethodPut, api.CharacterPath(id), ch, &resp); err != nil {
		return nil, classify("update", id, err)
	}
	return &resp, nil
}

// DeleteOne удаляет персонажа. Тело ответа игнорируется.
func (c *Client) DeleteOne(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, api.CharacterPath(id), nil, nil); err != nil {
		return classify("delete", id, err)
	}
	return nil
}

// classify превращает 404 в ErrNotFound, остальное в *RequestFailedError
func classify(op, id string, err error) error {
	var se *statusError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", op, id, ErrNotFound)
	}
	return requestFailed(op, err)
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		se := &statusError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			se.Message = errResp.Message
			if se.Message == "" {
				se.Message = errResp.Error
			}
		}
		return se
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
