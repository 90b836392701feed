package adapters

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

func TestGeminiService_Unconfigured(t *testing.T) {
	svc := NewGeminiService("", "")

	assert.False(t, svc.IsAvailable())
	_, err := svc.Ask(context.Background(), "What is a stock?")
	assert.Error(t, err)
}

func TestBuildAnalysisPrompt(t *testing.T) {
	prompt := buildAnalysisPrompt("$AAPL")

	assert.Contains(t, prompt, `"$AAPL"`)
	assert.Contains(t, prompt, "Bull Case")
	assert.Contains(t, prompt, "Bear Case")
}

func TestResponseText(t *testing.T) {
	assert.Empty(t, responseText(nil))
	assert.Empty(t, responseText(&genai.GenerateContentResponse{}))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Hello "), genai.Text("there! ")}}},
		},
	}
	assert.Equal(t, "Hello there!", responseText(resp))
}
