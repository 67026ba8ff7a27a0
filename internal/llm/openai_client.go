package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openglucose/glucose-tracker/internal/domain"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical glucose tracking assistant.

You receive the simulated blood-glucose derivative for one user over one window, the derived settings profile used for the simulation, a compact list of logged events, and any logged glucose readings. You must base your conclusions only on the provided data.

Your goals:
- Describe what the simulated curve predicts for this window in clear, neutral language.
- Relate steep predicted rises and falls to the logged events around them (meals, boluses, basal overrides, suspends).
- Compare logged glucose readings against the prediction where both exist.
- Point out logging habits that would make future simulations more useful.

Rules:
- Do NOT provide medical advice, dosing advice, or diagnoses.
- Do NOT suggest changing insulin doses, basal rates, or pump settings.
- Focus only on logging behavior and timing (logging meals when they happen, recording readings, completing event details).
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing what the simulation predicts for this window.",
  "observations": [
    "3-6 bullet points about the shape of the curve and the events behind it.",
    "At least one item about the steepest predicted excursion and what precedes it.",
    "If readings exist, one item comparing them to the prediction."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions about logging habits and timing.",
    "Never suggest changing doses or settings."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing one simulated window for this user.

- "profile" holds the derived physiological quantities the simulation used.
- "stats" summarizes the predicted derivative curve (mean, extremes, net change, steep hours).
- "events" lists the logged events contributing to the curve.
- "measurements" lists logged glucose readings inside the window, if any.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating glucose insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to generate insights for a simulated window.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	// Call OpenAI
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	// Parse the JSON response
	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
