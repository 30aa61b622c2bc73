package openai

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"SignBridge/pkg/model"

	"github.com/sashabaranov/go-openai"
)

const (
	ProviderName   = "openai"
	DefaultModel   = openai.GPT4oMini
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type chatGPTService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func New(cfg Config) model.Gateway {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return model.Unconfigured{Name: ProviderName}
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &chatGPTService{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

func (c *chatGPTService) Configured() bool { return true }

func (c *chatGPTService) Provider() string { return ProviderName }

func (c *chatGPTService) Complete(ctx context.Context, prompt model.Prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if prompt.Image == nil {
		msg.Content = prompt.Text
	} else {
		dataURL := "data:" + prompt.Image.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(prompt.Image.Data)
		msg.MultiContent = []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: prompt.Text},
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    dataURL,
					Detail: openai.ImageURLDetailAuto,
				},
			},
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: []openai.ChatCompletionMessage{msg},
	})
	if err != nil {
		return "", model.NewError(ProviderName, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", model.NewError(ProviderName, model.ErrEmptyResponse)
	}

	return resp.Choices[0].Message.Content, nil
}
