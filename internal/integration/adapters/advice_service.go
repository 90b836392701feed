// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const coachInstruction = "You are a friendly and cool financial coach for teenagers. Your name is 'XP'. " +
	"Explain financial concepts in a simple, relatable way using analogies they would understand (like gaming, social media, or snacks). " +
	"Keep your answers short, engaging, and easy to read. Use emojis to make it fun. Always be encouraging and positive."

// GeminiService implements the adapter.AdviceService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Ask answers a question in the coach persona.
func (s *GeminiService) Ask(ctx context.Context, prompt string) (string, error) {
	return s.generate(ctx, prompt, func(model *genai.GenerativeModel) {
		model.SetTemperature(0.7)
		model.SystemInstruction = genai.NewUserContent(genai.Text(coachInstruction))
	})
}

// Analyze asks for a teen-friendly analysis of a company or asset.
func (s *GeminiService) Analyze(ctx context.Context, subject string) (string, error) {
	return s.generate(ctx, buildAnalysisPrompt(subject), nil)
}

func (s *GeminiService) generate(ctx context.Context, prompt string, configure func(*genai.GenerativeModel)) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	if configure != nil {
		configure(model)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return text, nil
}

func buildAnalysisPrompt(subject string) string {
	var sb strings.Builder
	sb.WriteString("Act as a savvy financial analyst for a teenager.\n")
	sb.WriteString(fmt.Sprintf("Analyze the company or asset: %q.\n", subject))
	sb.WriteString("Please provide the following in a fun, engaging, and easy-to-understand format:\n")
	sb.WriteString("1. 🏢 **What is it?**: Explain what they do in 1 simple sentence.\n")
	sb.WriteString("2. 📰 **The Latest**: Summarize recent news or quarterly report highlights simply (Are they winning or losing right now?).\n")
	sb.WriteString("3. 🐂 **Bull Case**: 1 strong reason why the price might go UP.\n")
	sb.WriteString("4. 🐻 **Bear Case**: 1 strong reason why the price might go DOWN.\n")
	sb.WriteString("\nUse emojis and keep it short!")
	return sb.String()
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
