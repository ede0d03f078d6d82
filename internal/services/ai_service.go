package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/calorelia/calorelia-bot/internal/domain"
	apperrors "github.com/calorelia/calorelia-bot/internal/errors"
	"github.com/calorelia/calorelia-bot/internal/logger"
	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

const suggestPrompt = `You are a calorie and protein tracking assistant.
Analyze the user's input and extract food items with their protein (in grams) and calories.
Respond ONLY with a strict JSON array of objects, like this:
[{"name": "Food Name", "protein": 10, "calories": 200}, ...]
CRITICAL: For items like "chicken breast", "steak", or "fruit", use the standard size for ONE WHOLE UNIT rather than a 100g default, unless specified.
Always prioritize "per unit" or "per serving" estimates.
If amounts are specified (e.g. "2 eggs"), calculate the total for that amount.`

// AIService turns a free-text food description into entry candidates using
// the user's Gemini key, with an optional OpenAI fallback when a global key
// is configured.
type AIService struct {
	openaiClient *openai.Client
}

func NewAIService(openaiAPIKey string) *AIService {
	s := &AIService{}
	if openaiAPIKey != "" {
		s.openaiClient = openai.NewClient(openaiAPIKey)
	}
	return s
}

// SuggestFoods sends one generation request and parses the candidate list
// out of the completion. Credential and prompt presence are checked before
// any network call. Provider-reported failures surface as ErrAPIError with
// the provider's message; unusable completions as ErrMalformedResponse.
func (s *AIService) SuggestFoods(ctx context.Context, apiKey, input string) ([]domain.FoodCandidate, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, apperrors.ErrMissingCredential
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, apperrors.ErrMissingPrompt
	}

	text, err := s.generateWithGemini(ctx, apiKey, input)
	if err != nil {
		if s.openaiClient == nil {
			return nil, err
		}
		logger.Warningf("Gemini call failed, falling back to OpenAI: %v", err)
		text, err = s.generateWithOpenAI(ctx, input)
		if err != nil {
			return nil, err
		}
	}

	return ParseCandidates(text)
}

func (s *AIService) generateWithGemini(ctx context.Context, apiKey, input string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", apperrors.NewAPIError(err.Error())
	}
	defer client.Close()

	model := client.GenerativeModel(geminiModel)
	resp, err := model.GenerateContent(ctx, genai.Text(suggestPrompt+"\n\nUser Input: "+input))
	if err != nil {
		return "", apperrors.NewAPIError(err.Error())
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.ErrMalformedResponse
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", apperrors.ErrMalformedResponse
	}
	return string(text), nil
}

func (s *AIService) generateWithOpenAI(ctx context.Context, input string) (string, error) {
	resp, err := s.openaiClient.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: suggestPrompt + "\n\nUser Input: " + input,
				},
			},
		},
	)
	if err != nil {
		return "", apperrors.NewAPIError(err.Error())
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.ErrMalformedResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// ParseCandidates extracts the first bracket-delimited array from a
// completion that may carry explanatory prose around it, then decodes each
// element independently. An item with a missing or non-numeric protein or
// calories field is dropped with a warning; the rest still import.
func ParseCandidates(raw string) ([]domain.FoodCandidate, error) {
	arrayText := extractJSONArray(raw)
	if arrayText == "" {
		return nil, apperrors.ErrMalformedResponse
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(arrayText), &elements); err != nil {
		return nil, apperrors.NewMalformedResponseError(err)
	}

	candidates := make([]domain.FoodCandidate, 0, len(elements))
	for i, element := range elements {
		var item struct {
			Name     string   `json:"name"`
			Protein  *float64 `json:"protein"`
			Calories *float64 `json:"calories"`
		}
		if err := json.Unmarshal(element, &item); err != nil {
			logger.Warningf("Dropping unreadable AI item %d: %v", i, err)
			continue
		}
		if item.Protein == nil || item.Calories == nil {
			logger.Warningf("Dropping AI item %d (%q): missing protein or calories", i, item.Name)
			continue
		}
		candidates = append(candidates, domain.FoodCandidate{
			Name:     item.Name,
			Protein:  *item.Protein,
			Calories: *item.Calories,
		})
	}
	return candidates, nil
}

// extractJSONArray finds the array portion of the response, ignoring any
// text the model emitted around it.
func extractJSONArray(s string) string {
	start := strings.Index(s, "[")
	if start == -1 {
		return ""
	}
	end := strings.LastIndex(s, "]")
	if end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}
