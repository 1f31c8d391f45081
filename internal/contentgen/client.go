package contentgen

import (
	"app/internal/domain/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client はAIプロバイダへの生成呼び出しだけを約束。
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewClient はprovider_typeに応じたクライアントを作る。
func NewClient(p model.Provider) (Client, error) {
	switch p.ProviderType {
	case model.ProviderTypeOpenAI:
		base := p.APIBase
		if base == "" {
			base = "https://api.openai.com/v1"
		}
		return &openAIClient{
			apiKey:    p.APIKey,
			apiBase:   strings.TrimRight(base, "/"),
			modelName: p.Model,
			client:    &http.Client{Timeout: defaultTimeout},
		}, nil
	case model.ProviderTypeAzure:
		if p.APIBase == "" {
			return nil, fmt.Errorf("azure provider requires api_base")
		}
		return &azureClient{
			apiKey:     p.APIKey,
			endpoint:   strings.TrimRight(p.APIBase, "/"),
			deployment: p.Model,
			client:     &http.Client{Timeout: defaultTimeout},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", p.ProviderType)
	}
}

// chat completions の共通ボディ
type chatRequest struct {
	Model    string        `json:"model,omitempty"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func decodeChatResponse(body io.Reader) (string, error) {
	var res chatResponse
	if err := json.NewDecoder(body).Decode(&res); err != nil {
		return "", fmt.Errorf("decode response failed: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return strings.TrimSpace(res.Choices[0].Message.Content), nil
}

type openAIClient struct {
	apiKey    string
	apiBase   string
	modelName string
	client    *http.Client
}

func (c *openAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.modelName,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}

	url := c.apiBase + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("openai returned status %d", resp.StatusCode)
	}

	return decodeChatResponse(resp.Body)
}

type azureClient struct {
	apiKey     string
	endpoint   string
	deployment string
	client     *http.Client
}

const azureAPIVersion = "2023-12-01-preview"

func (c *azureClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}

	//Azureはdeployment名をURLに載せ、キーはapi-keyヘッダーで渡す
	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, c.deployment, azureAPIVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("azure request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("azure returned status %d", resp.StatusCode)
	}

	return decodeChatResponse(resp.Body)
}
