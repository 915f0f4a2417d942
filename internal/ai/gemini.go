// README: Gemini-backed intent extractor.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"rupeetravel/internal/modules/intent"
	"rupeetravel/internal/types"
)

// DefaultModel balances latency and cost for short extraction prompts.
const DefaultModel = "gemini-2.0-flash"

// GeminiExtractor implements IntentExtractor using Google's Gemini models.
type GeminiExtractor struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiExtractor initializes a Gemini client. apiKey comes from the
// environment; modelName falls back to DefaultModel when empty.
func NewGeminiExtractor(ctx context.Context, apiKey, modelName string) (*GeminiExtractor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = DefaultModel
	}
	model := client.GenerativeModel(modelName)

	// Force JSON output for structured parsing, and keep the temperature low:
	// extraction wants fidelity, not creativity.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.2)

	return &GeminiExtractor{client: client, model: model}, nil
}

// Close cleans up the underlying client.
func (e *GeminiExtractor) Close() {
	e.client.Close()
}

// Extract asks the model for a structured trip intent.
func (e *GeminiExtractor) Extract(ctx context.Context, queryText string, today types.Date) (intent.TripIntent, error) {
	fullPrompt := fmt.Sprintf("%s\n\nUser Query: %s", buildSystemPrompt(today), queryText)

	resp, err := e.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return intent.TripIntent{}, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return intent.TripIntent{}, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// JSON mode should prevent markdown fences, but strip them anyway.
	return decodeIntent([]byte(cleanJSONString(responseText.String())))
}

// buildSystemPrompt constructs the extraction instructions, anchored to the
// request's "today" so relative dates resolve deterministically.
func buildSystemPrompt(today types.Date) string {
	return fmt.Sprintf(`You are an expert at understanding user requests for flights and extracting the key parameters into a structured format.
The current date is %s. The current year is %d.

DATE RULES:
1. Only extract a date if the user explicitly mentions one. If the user just asks for "the cheapest flight" without mentioning a date, leave both date fields null. NEVER default to the current date.
2. Handle relative dates: "today" is %s. "tomorrow" is %s.
3. Handle month-based queries: if the user mentions a month (e.g. "in December", "next January"), set departure_date_start to the first day and departure_date_end to the last day of that month in its next occurrence. Months earlier in the calendar than the current month belong to next year.

OTHER RULES:
- If the user asks for a trip of a certain duration, extract the number of days into trip_duration_days ("a week long trip" means 7, "weekend trip" means 2).
- If the user mentions traveling from A to B and back, trip_type is "round_trip"; otherwise "one_way".
- "cheapest" implies limit_per_leg 1.
- If origin or destination cannot be determined, set clarification_needed to a short question asking the user for the missing detail.

Output JSON Schema:
{
  "trip_type": "one_way" | "round_trip",
  "origin": "string",
  "destination": "string",
  "departure_date_start": "YYYY-MM-DD" | null,
  "departure_date_end": "YYYY-MM-DD" | null,
  "trip_duration_days": integer | null,
  "limit_per_leg": integer (default 1),
  "clarification_needed": "string" | null
}`,
		today, today.Year, today, today.AddDays(1))
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
