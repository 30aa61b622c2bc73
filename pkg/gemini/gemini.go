package gemini

import (
	"context"
	"errors"
	"strings"
	"time"

	"SignBridge/pkg/model"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	ProviderName     = "gemini"
	DefaultModelName = "gemini-3-flash-preview"
	DefaultTimeout   = 30 * time.Second
)

type Config struct {
	APIKey    string
	ModelName string
	Timeout   time.Duration
}

type geminiClient struct {
	modelName string
	timeout   time.Duration
	client    *genai.Client
}

// New returns a gateway backed by the Gemini API. An empty APIKey yields an
// unconfigured gateway rather than an error so the server can still start.
func New(ctx context.Context, cfg Config) (model.Gateway, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return model.Unconfigured{Name: ProviderName}, nil
	}

	if cfg.ModelName == "" {
		cfg.ModelName = DefaultModelName
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		modelName: cfg.ModelName,
		timeout:   cfg.Timeout,
		client:    client,
	}, nil
}

func (g *geminiClient) Configured() bool { return true }

func (g *geminiClient) Provider() string { return ProviderName }

func (g *geminiClient) Complete(ctx context.Context, prompt model.Prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	parts := []genai.Part{genai.Text(prompt.Text)}
	if prompt.Image != nil {
		parts = append(parts, genai.Blob{MIMEType: prompt.Image.MIMEType, Data: prompt.Image.Data})
	}

	res, err := g.client.GenerativeModel(g.modelName).GenerateContent(ctx, parts...)
	if err != nil {
		return "", model.NewError(ProviderName, err)
	}

	text, err := responseText(res)
	if err != nil {
		return "", model.NewError(ProviderName, err)
	}
	return text, nil
}

func responseText(res *genai.GenerateContentResponse) (string, error) {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return "", model.ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", errors.Join(model.ErrEmptyResponse, errors.New("unexpected response format from Gemini API"))
	}
	return sb.String(), nil
}

func (g *geminiClient) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
