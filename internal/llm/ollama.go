package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaProvider drives a local model through langchaingo. Ollama has no
// schema-constrained mode, so the schema is appended to the system prompt,
// JSON mode is requested, and the reply is validated like any other.
type OllamaProvider struct {
	llm   llms.Model
	model string
}

func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model is required")
	}

	opts := []ollama.Option{
		ollama.WithModel(cfg.Model),
		ollama.WithFormat("json"),
	}
	if cfg.ServerURL != "" {
		opts = append(opts, ollama.WithServerURL(cfg.ServerURL))
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}
	return &OllamaProvider{llm: client, model: cfg.Model}, nil
}

func (p *OllamaProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var callOpts []llms.CallOption
	if req.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.Temperature > 0 {
		callOpts = append(callOpts, llms.WithTemperature(req.Temperature))
	}

	resp, err := p.llm.GenerateContent(ctx, buildOllamaMessages(req), callOpts...)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("no choices in ollama response")}
	}

	choice := resp.Choices[0]
	content := json.RawMessage(extractJSONObject(choice.Content))

	if req.Schema != nil {
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}

	out := &Response{
		Content:    content,
		Model:      p.model,
		StopReason: "end",
	}
	if choice.StopReason == "length" {
		out.StopReason = "max_tokens"
	}
	out.Usage = ollamaUsage(choice.GenerationInfo)
	return out, nil
}

func (p *OllamaProvider) ModelID() string {
	return p.model
}

func buildOllamaMessages(req Request) []llms.MessageContent {
	system := req.System
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			system = strings.TrimSpace(system + "\n\nRespond with ONLY a JSON object matching this JSON Schema:\n" + string(def))
		}
	}

	msgs := make([]llms.MessageContent, 0, len(req.Messages)+1)
	if system != "" {
		msgs = append(msgs, llms.TextParts(llms.ChatMessageTypeSystem, system))
	}
	for _, m := range req.Messages {
		role := llms.ChatMessageTypeHuman
		if m.Role == RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		msgs = append(msgs, llms.TextParts(role, m.Content))
	}
	return msgs
}

// extractJSONObject drops <think> blocks emitted by reasoning models and
// trims anything outside the outermost braces.
func extractJSONObject(s string) string {
	s = strings.TrimSpace(s)
	if start := strings.Index(s, "<think>"); start != -1 {
		if end := strings.Index(s, "</think>"); end > start {
			s = strings.TrimSpace(s[:start] + s[end+len("</think>"):])
		}
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start != -1 && end > start {
		return s[start : end+1]
	}
	return s
}

func ollamaUsage(info map[string]any) Usage {
	var u Usage
	if n, ok := intValue(info["PromptTokens"]); ok {
		u.InputTokens = int(n)
	}
	if n, ok := intValue(info["CompletionTokens"]); ok {
		u.OutputTokens = int(n)
	}
	u.TotalTokens = u.InputTokens + u.OutputTokens
	return u
}
