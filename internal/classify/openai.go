package classify

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const defaultModel = openai.ChatModelGPT4oMini

// OpenAIClient implements Client with the official OpenAI SDK.
type OpenAIClient struct {
	apiKey string
	model  string
	client openai.Client
}

// OpenAIConfig holds construction options. BaseURL and HTTPClient exist
// for tests.
type OpenAIConfig struct {
	APIKey     string
	Model      string
	Timeout    time.Duration
	BaseURL    string
	HTTPClient *http.Client
}

func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIClient{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		client: openai.NewClient(opts...),
	}
}

// ClassifyMenu sends the cleaned menu text to the model and returns its
// raw output. Validation and decoding happen in ParseClassification.
func (c *OpenAIClient) ClassifyMenu(ctx context.Context, menuText string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("missing OPENAI_API_KEY")
	}
	if menuText == "" {
		return "", errors.New("empty menu text")
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(BuildClassifyPrompt(menuText)),
		},
		Temperature: openai.Float(0.2),
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("empty model response")
	}
	return resp.Choices[0].Message.Content, nil
}
