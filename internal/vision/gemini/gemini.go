// Package gemini implements the vision/text generation collaborator on the
// Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string { return "gemini" }

// AnalyzeImage sends the prompt plus optional image and returns the model's
// raw text. One attempt only: retry policy for the analysis call belongs to
// the caller, and the whole request aborts when generation fails.
func (e *Engine) AnalyzeImage(ctx context.Context, image []byte, mime, prompt string) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	if m == nil {
		return "", fmt.Errorf("gemini: model is nil")
	}

	parts := []genai.Part{genai.Text(prompt)}
	if len(image) > 0 {
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, &genai.Blob{MIMEType: mime, Data: image})
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", err
	}
	txt := firstText(resp)
	if txt == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return txt, nil
}

// GenerateText answers a text-only question; used by the production-count
// fallback chain.
func (e *Engine) GenerateText(ctx context.Context, prompt string) (string, error) {
	return e.AnalyzeImage(ctx, nil, "", prompt)
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				if s := strings.TrimSpace(string(t)); s != "" {
					return s
				}
			}
		}
	}
	return ""
}
