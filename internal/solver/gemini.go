package solver

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	textPromptTemplate = `You are a friendly and smart AI math assistant. Solve this math problem or answer this question concisely: "%s".
IMPORTANT RULES:
1. Handle measurement units (e.g., 5kg, 10m/s) intelligently and provide results with appropriate units.
2. Do NOT use any currency symbols (like $, or euro signs) in your answer. Use general accounting numbers.
3. Do NOT use LaTeX formatting (no $$ or $ delimiters). Use plain text for math formulas.`

	imagePromptDefault = "Analyze this image and solve the math problem shown step-by-step. " +
		"IMPORTANT: Do NOT use currency symbols in the final numeric answer or intermediate steps. " +
		"Do NOT use LaTeX formatting like $$ or $. Use plain text and numbers."

	imagePromptWithInstruction = "Analyze this image and solve the math problem. %s. " +
		"Handle units (like kg, m, s) correctly if visible. " +
		"IMPORTANT: Do NOT use currency symbols. Do NOT use LaTeX formatting like $$ or $. " +
		"Just use plain text and numbers."
)

// GeminiClient implements Client against the Google Gemini API.
// The underlying client is created lazily on the first solve so constructing
// the engine without an API key stays cheap.
type GeminiClient struct {
	apiKey string
	model  string

	client    *genai.Client
	generator *genai.GenerativeModel
}

// NewGeminiClient creates a Gemini-backed solver. The model name comes from
// configuration; an empty name selects a sensible default.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiClient{apiKey: apiKey, model: model}
}

// ensureClient initializes the Gemini client on first use.
func (c *GeminiClient) ensureClient(ctx context.Context) error {
	if c.generator != nil {
		return nil
	}
	if c.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	c.generator = client.GenerativeModel(c.model)
	return nil
}

// Solve sends the prompt to Gemini and returns the raw response text.
func (c *GeminiClient) Solve(ctx context.Context, prompt Prompt) (string, error) {
	if prompt.IsEmpty() {
		return "", fmt.Errorf("prompt carries neither text nor image")
	}
	if err := c.ensureClient(ctx); err != nil {
		return "", err
	}

	parts := buildParts(prompt)
	resp, err := c.generator.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(fmt.Sprintf("%v", part))
	}
	return sb.String(), nil
}

// Close releases the underlying API client, if one was created.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func buildParts(prompt Prompt) []genai.Part {
	if prompt.Image == nil {
		return []genai.Part{genai.Text(fmt.Sprintf(textPromptTemplate, prompt.Text))}
	}

	instruction := imagePromptDefault
	if strings.TrimSpace(prompt.Text) != "" {
		instruction = fmt.Sprintf(imagePromptWithInstruction, prompt.Text)
	}
	return []genai.Part{
		genai.Blob{MIMEType: prompt.Image.MIMEType, Data: prompt.Image.Data},
		genai.Text(instruction),
	}
}
