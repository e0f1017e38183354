package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OllamaBackend calls a remote chat-completion endpoint speaking the Ollama
// wire shape: {model, messages, options, stream:false} in,
// {message:{content}} out.
type OllamaBackend struct {
	url    string
	model  string
	client *http.Client
}

func NewOllamaBackend(url, model string) *OllamaBackend {
	return &OllamaBackend{
		url:    url,
		model:  model,
		client: &http.Client{},
	}
}

func (b *OllamaBackend) Name() string {
	return "ollama"
}

func (b *OllamaBackend) Generate(ctx context.Context, prompt string, maxTokens int, timeout time.Duration) (string, error) {
	payload := map[string]interface{}{
		"model": b.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"options": map[string]interface{}{
			"num_predict": maxTokens,
		},
		"stream": false,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("backend request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode > 299 {
		raw, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("backend returned status %d: %s", res.StatusCode, string(raw))
	}

	var respStruct struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&respStruct); err != nil {
		return "", fmt.Errorf("malformed backend response: %w", err)
	}
	reply := strings.TrimSpace(respStruct.Message.Content)
	if reply == "" {
		return "", fmt.Errorf("backend response missing message content")
	}
	return reply, nil
}
