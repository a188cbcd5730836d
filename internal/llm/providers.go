package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const systemPrompt = "You are a professional video editing assistant who finds good places to split a video by analysing its subtitles."

const (
	openAIURL      = "https://api.openai.com/v1/chat/completions"
	ollamaURL      = "http://localhost:11434"
	qwenURL        = "https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation"
	huggingFaceURL = "https://api-inference.huggingface.co/models/"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

func newChatRequest(model, prompt string) chatRequest {
	return chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.3,
	}
}

// openAIProvider speaks the chat completions protocol; BaseURL points it at
// any compatible server.
type openAIProvider struct {
	client *http.Client
	apiKey string
	model  string
	url    string
}

func newOpenAI(opts Options, client *http.Client) *openAIProvider {
	p := &openAIProvider{client: client, apiKey: opts.APIKey, model: opts.Model, url: openAIURL}
	if p.model == "" {
		p.model = "gpt-3.5-turbo"
	}
	if opts.BaseURL != "" {
		p.url = strings.TrimRight(opts.BaseURL, "/") + "/chat/completions"
	}
	return p
}

func (p *openAIProvider) Name() string     { return ProviderOpenAI }
func (p *openAIProvider) ContextCues() int { return 50 }

func (p *openAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	var resp struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
	if err := postJSON(ctx, p.client, ProviderOpenAI, p.url, p.apiKey, newChatRequest(p.model, prompt), &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

// ollamaProvider calls a local Ollama server
type ollamaProvider struct {
	client *http.Client
	model  string
	url    string
}

func newOllama(opts Options, client *http.Client) *ollamaProvider {
	p := &ollamaProvider{client: client, model: opts.Model, url: ollamaURL}
	if p.model == "" {
		p.model = "llama3.2"
	}
	if opts.BaseURL != "" {
		p.url = strings.TrimRight(opts.BaseURL, "/")
	}
	return p
}

func (p *ollamaProvider) Name() string     { return ProviderOllama }
func (p *ollamaProvider) ContextCues() int { return 50 }

func (p *ollamaProvider) Generate(ctx context.Context, prompt string) (string, error) {
	req := map[string]any{
		"model":  p.model,
		"prompt": prompt,
		"stream": false,
		"options": map[string]any{
			"temperature": 0.3,
			"top_p":       0.9,
		},
	}
	var resp struct {
		Response string `json:"response"`
	}
	if err := postJSON(ctx, p.client, ProviderOllama, p.url+"/api/generate", "", req, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

// qwenProvider calls Alibaba DashScope text generation
type qwenProvider struct {
	client *http.Client
	apiKey string
	model  string
	url    string
}

func newQwen(opts Options, client *http.Client) *qwenProvider {
	p := &qwenProvider{client: client, apiKey: opts.APIKey, model: opts.Model, url: qwenURL}
	if p.model == "" {
		p.model = "qwen-turbo"
	}
	if opts.BaseURL != "" {
		p.url = opts.BaseURL
	}
	return p
}

func (p *qwenProvider) Name() string     { return ProviderQwen }
func (p *qwenProvider) ContextCues() int { return 40 }

func (p *qwenProvider) Generate(ctx context.Context, prompt string) (string, error) {
	var resp struct {
		Output struct {
			Text string `json:"text"`
		} `json:"output"`
	}
	if err := postJSON(ctx, p.client, ProviderQwen, p.url, p.apiKey, newChatRequest(p.model, prompt), &resp); err != nil {
		return "", err
	}
	return resp.Output.Text, nil
}

// huggingFaceProvider calls the hosted inference API
type huggingFaceProvider struct {
	client *http.Client
	apiKey string
	model  string
	url    string
}

func newHuggingFace(opts Options, client *http.Client) *huggingFaceProvider {
	p := &huggingFaceProvider{client: client, apiKey: opts.APIKey, model: opts.Model, url: huggingFaceURL}
	if p.model == "" {
		p.model = "microsoft/DialoGPT-medium"
	}
	if opts.BaseURL != "" {
		p.url = strings.TrimRight(opts.BaseURL, "/") + "/"
	}
	return p
}

func (p *huggingFaceProvider) Name() string     { return ProviderHuggingFace }
func (p *huggingFaceProvider) ContextCues() int { return 30 }

func (p *huggingFaceProvider) Generate(ctx context.Context, prompt string) (string, error) {
	var resp []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := postJSON(ctx, p.client, ProviderHuggingFace, p.url+p.model, p.apiKey, map[string]string{"inputs": prompt}, &resp); err != nil {
		return "", err
	}
	if len(resp) == 0 {
		return "", fmt.Errorf("huggingface: empty response")
	}
	return resp[0].GeneratedText, nil
}
