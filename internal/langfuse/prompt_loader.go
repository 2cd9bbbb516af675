package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PromptLoader resolves a named prompt from Langfuse, then a local cache file,
// then a built-in default.
type PromptLoader struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	// CachePath receives every prompt fetched remotely and is read when the
	// remote fetch is disabled or fails.
	CachePath string
	// Default is returned when neither source yields a prompt.
	Default string

	HTTPClient *http.Client
	Logger     *slog.Logger
}

var errLangfuseDisabled = errors.New("langfuse integration disabled")

// PromptSource tells where a loaded prompt came from.
type PromptSource string

const (
	PromptFromLangfuse PromptSource = "langfuse"
	PromptFromCache    PromptSource = "cache"
	PromptFromDefault  PromptSource = "default"
)

// Load returns the prompt text and its source. An empty name skips Langfuse.
// Load only fails when no source, the default included, has a prompt.
func (l *PromptLoader) Load(ctx context.Context, name, label string) (string, PromptSource, error) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if name != "" {
		prompt, err := l.fetch(ctx, name, label)
		switch {
		case err == nil:
			if err := writeCache(l.CachePath, prompt); err != nil {
				logger.Warn("failed to cache prompt locally", "path", l.CachePath, "error", err)
			}
			return prompt, PromptFromLangfuse, nil
		case !errors.Is(err, errLangfuseDisabled):
			logger.Warn("prompt fetch failed", "prompt", name, "error", err)
		}
	}

	if l.CachePath != "" {
		data, err := os.ReadFile(l.CachePath)
		if err == nil && strings.TrimSpace(string(data)) != "" {
			return string(data), PromptFromCache, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warn("read cached prompt", "path", l.CachePath, "error", err)
		}
	}

	if l.Default != "" {
		return l.Default, PromptFromDefault, nil
	}
	return "", "", fmt.Errorf("prompt %q not available", name)
}

func (l *PromptLoader) fetch(ctx context.Context, name, label string) (string, error) {
	if l.BaseURL == "" || l.PublicKey == "" || l.SecretKey == "" {
		return "", errLangfuseDisabled
	}

	parsed, err := url.Parse(strings.TrimSuffix(l.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(name)
	if label != "" {
		parsed.RawQuery = url.Values{"label": []string{label}}.Encode()
	}

	requestCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(l.PublicKey, l.SecretKey)

	httpClient := l.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var promptResp struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&promptResp); err != nil {
		return "", fmt.Errorf("decode prompt response: %w", err)
	}

	switch promptResp.Type {
	case "", "text":
		var text string
		if err := json.Unmarshal(promptResp.Prompt, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []chatPromptMessage
		if err := json.Unmarshal(promptResp.Prompt, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return systemText(messages), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", promptResp.Type)
	}
}

type chatPromptMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// systemText joins the system messages of a chat prompt. The user turn is
// rendered locally from journal entries, so other roles are dropped.
func systemText(messages []chatPromptMessage) string {
	var parts []string
	for _, m := range messages {
		if m.Type == "placeholder" || !strings.EqualFold(m.Role, "system") {
			continue
		}
		if c := strings.TrimSpace(m.Content); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, "\n\n")
}

func writeCache(path, prompt string) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
