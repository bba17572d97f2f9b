// Package translate produces Chinese names and plain-language summaries for
// skills through an OpenAI-compatible chat completions API.
package translate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/kennyg/skillbrowser/internal/skill"
)

const (
	// DefaultEndpoint is the DeepSeek chat completions URL
	DefaultEndpoint = "https://api.deepseek.com/v1/chat/completions"
	// DefaultModel is the model used when none is configured
	DefaultModel = "deepseek-chat"

	temperature = 0.5

	// maxPromptDescription caps the description sent to the model, in characters
	maxPromptDescription = 800
)

const systemPrompt = `你是一个翻译助手。请严格按照以下格式翻译：

名称：中文名称（简洁，不超过15字）
1简介：用通俗易懂的大白话介绍这个技能是干什么的，让完全不懂技术的人也能看懂。不超过50字。
2时机：说明在什么情况下使用这个技能，用一句话描述。不超过30字。
3调用：直接给出调用方式，如"输入 /xxx"。

每部分用换行分隔，不要使用任何格式符号，只用纯文本。`

// ErrNoAPIKey is returned when the client has no API key
var ErrNoAPIKey = errors.New("no API key configured")

// APIError is a non-2xx response from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("translation API returned %d", e.StatusCode)
	}
	return fmt.Sprintf("translation API returned %d: %s", e.StatusCode, e.Message)
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Translator translates one skill
type Translator interface {
	Translate(ctx context.Context, info skill.Info) (Result, error)
}

// Client calls a chat completions endpoint
type Client struct {
	APIKey     string
	Endpoint   string
	Model      string
	HTTPClient *http.Client
}

// NewClient returns a client with default endpoint and model
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		Endpoint:   DefaultEndpoint,
		Model:      DefaultModel,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Translate asks the model for a translation of info and parses the reply
func (c *Client) Translate(ctx context.Context, info skill.Info) (Result, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return Result{}, ErrNoAPIKey
	}

	body, err := c.requestBody(info)
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}

	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("translation request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := gjson.GetBytes(data, "error.message").String()
		if msg == "" {
			msg = strings.TrimSpace(string(data))
		}
		return Result{}, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if !gjson.ValidBytes(data) {
		return Result{}, fmt.Errorf("malformed response from translation API")
	}

	reply := gjson.GetBytes(data, "choices.0.message.content").String()
	return ParseReply(reply, info), nil
}

func (c *Client) requestBody(info skill.Info) ([]byte, error) {
	model := c.Model
	if model == "" {
		model = DefaultModel
	}

	desc := []rune(info.Description)
	if len(desc) > maxPromptDescription {
		desc = desc[:maxPromptDescription]
	}
	user := fmt.Sprintf("翻译以下 Skill：\n名称: %s\n描述: %s", info.Name, string(desc))

	body := []byte(`{}`)
	sets := []struct {
		path  string
		value interface{}
	}{
		{"model", model},
		{"messages", []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: user},
		}},
		{"temperature", temperature},
	}
	var err error
	for _, s := range sets {
		body, err = sjson.SetBytes(body, s.path, s.value)
		if err != nil {
			return nil, err
		}
	}
	return body, nil
}
