package contentgen_test

import (
	"app/internal/contentgen"
	"app/internal/domain/model"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type capturedRequest struct {
	path       string
	apiVersion string
	header     http.Header
}

func chatCompletionsServer(t *testing.T, capture *capturedRequest, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capture.path = r.URL.Path
		capture.apiVersion = r.URL.Query().Get("api-version")
		capture.header = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "` + content + `"}}]}`))
	}))
}

func TestNewClient_UnsupportedType(t *testing.T) {
	_, err := contentgen.NewClient(model.Provider{ProviderType: "bedrock"})
	assert.Error(t, err)
}

func TestNewClient_AzureRequiresAPIBase(t *testing.T) {
	_, err := contentgen.NewClient(model.Provider{
		ProviderType: model.ProviderTypeAzure,
		APIKey:       "key",
		Model:        "gpt-4",
	})
	assert.Error(t, err)
}

func TestOpenAIClient_Generate(t *testing.T) {
	var got capturedRequest
	srv := chatCompletionsServer(t, &got, "hello from openai")
	defer srv.Close()

	c, err := contentgen.NewClient(model.Provider{
		ProviderType: model.ProviderTypeOpenAI,
		APIKey:       "sk-test",
		APIBase:      srv.URL,
		Model:        "gpt-4",
	})
	assert.NoError(t, err)

	out, err := c.Generate(context.Background(), "say hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello from openai", out)
	assert.Equal(t, "/chat/completions", got.path)
	assert.Equal(t, "Bearer sk-test", got.header.Get("Authorization"))
}

// Azureはdeployment名をURLに載せ、キーはapi-keyヘッダーで渡す
func TestAzureClient_Generate(t *testing.T) {
	var got capturedRequest
	srv := chatCompletionsServer(t, &got, "hello from azure")
	defer srv.Close()

	c, err := contentgen.NewClient(model.Provider{
		ProviderType: model.ProviderTypeAzure,
		APIKey:       "azure-key",
		APIBase:      srv.URL,
		Model:        "gpt-4-deploy",
	})
	assert.NoError(t, err)

	out, err := c.Generate(context.Background(), "say hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello from azure", out)
	assert.Equal(t, "/openai/deployments/gpt-4-deploy/chat/completions", got.path)
	assert.Equal(t, "azure-key", got.header.Get("api-key"))
	assert.Equal(t, "2023-12-01-preview", got.apiVersion)
}

func TestOpenAIClient_Generate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := contentgen.NewClient(model.Provider{
		ProviderType: model.ProviderTypeOpenAI,
		APIKey:       "sk-test",
		APIBase:      srv.URL,
		Model:        "gpt-4",
	})
	assert.NoError(t, err)

	_, err = c.Generate(context.Background(), "say hello")
	assert.Error(t, err)
}

func TestOpenAIClient_Generate_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c, err := contentgen.NewClient(model.Provider{
		ProviderType: model.ProviderTypeOpenAI,
		APIKey:       "sk-test",
		APIBase:      srv.URL,
		Model:        "gpt-4",
	})
	assert.NoError(t, err)

	_, err = c.Generate(context.Background(), "say hello")
	assert.Error(t, err)
}
