// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
)

// GeminiService implements the adapter.PlannerService using Google Gemini.
// Free-text generation (coach advice, briefings) runs on the flash model;
// task extraction needs structured output and runs on the pro model.
type GeminiService struct {
	apiKey         string
	textModelName  string
	parseModelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:         apiKey,
		textModelName:  "gemini-2.5-flash-lite",
		parseModelName: "gemini-2.5-pro",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// GenerateText returns free text for a prompt, optionally steered by a
// system instruction.
func (s *GeminiService) GenerateText(ctx context.Context, prompt, systemInstruction string) (string, error) {
	if !s.IsAvailable() {
		return "", domainerror.ErrPlannerUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.textModelName)
	model.SetTemperature(0.7)
	if systemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemInstruction)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", domainerror.ErrPlannerEmptyResponse
	}
	return text, nil
}

// taskDraftSchema constrains the extraction output to an array of task
// drafts. timeBlock is optional; the other fields are required.
func taskDraftSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":     {Type: genai.TypeString},
				"priority":  {Type: genai.TypeString, Enum: []string{"low", "medium", "high"}},
				"date":      {Type: genai.TypeString, Description: "YYYY-MM-DD"},
				"timeBlock": {Type: genai.TypeString, Description: "HH:MM or empty"},
			},
			Required: []string{"title", "priority", "date"},
		},
	}
}

// ExtractTasks parses natural language (and an optional image) into task
// drafts relative to currentDate.
func (s *GeminiService) ExtractTasks(ctx context.Context, text, currentDate string, language entity.Language, image *adapter.ImageInput) ([]entity.TaskDraft, error) {
	if !s.IsAvailable() {
		return nil, domainerror.ErrPlannerUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.parseModelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = taskDraftSchema()
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(s.buildExtractionInstruction(currentDate, language))},
	}

	parts := []genai.Part{genai.Text(fmt.Sprintf("Input: %q", text))}
	if image != nil {
		parts = append(parts, genai.Blob{MIMEType: image.MIMEType, Data: image.Data})
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	drafts, err := s.parseDrafts(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return drafts, nil
}

// buildExtractionInstruction creates the system instruction for task
// extraction.
func (s *GeminiService) buildExtractionInstruction(currentDate string, language entity.Language) string {
	languageName := "Uzbek"
	if language == entity.LanguageRussian {
		languageName = "Russian"
	}

	var sb strings.Builder
	sb.WriteString("You are an advanced AI planner assistant. Extract structured tasks from natural language or images.\n")
	sb.WriteString(fmt.Sprintf("Current date: %s.\n", currentDate))
	sb.WriteString(fmt.Sprintf("Language: %s.\n\n", languageName))
	sb.WriteString(`Rules:
1. Extract each distinct task with its details.
2. Infer priority: 'high' for urgent words ("tez", "muhim", "srochno"), 'medium' by default, 'low' otherwise.
3. Infer date: "ertaga" or "tomorrow" means the day after the current date.
4. Extract time of day: "soat 9 da" becomes "09:00".
5. Professionalize the title: correct typos and make it clear.

Return a valid JSON array.`)
	return sb.String()
}

// rawTaskDraft represents one extracted task in the raw Gemini response.
type rawTaskDraft struct {
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	Date      string `json:"date"`
	TimeBlock string `json:"timeBlock"`
}

// parseDrafts parses the Gemini response into task drafts.
func (s *GeminiService) parseDrafts(resp *genai.GenerateContentResponse) ([]entity.TaskDraft, error) {
	textContent := responseText(resp)
	if textContent == "" {
		return nil, domainerror.ErrPlannerEmptyResponse
	}

	// Clean the response (remove markdown code blocks if present).
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw []rawTaskDraft
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", domainerror.ErrPlannerBadPayload, err)
	}

	drafts := make([]entity.TaskDraft, 0, len(raw))
	for _, r := range raw {
		drafts = append(drafts, entity.TaskDraft{
			Title:     r.Title,
			Priority:  entity.Priority(r.Priority),
			Date:      r.Date,
			TimeBlock: r.TimeBlock,
		})
	}
	return drafts, nil
}

// responseText extracts the first text part from a Gemini response.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text)
		}
	}
	return ""
}
