package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// CoachService talks to the Groq chat-completions API. Two model tiers: fast
// for one-liners, smart for anything that needs reasoning.
type CoachService struct {
	client  *http.Client
	token   string
	baseURL string
}

const (
	coachModelFast  = "llama-3.1-8b-instant"
	coachModelSmart = "llama-3.3-70b-versatile"

	defaultCoachSystem = "You are a helpful AI life coach."
)

func NewCoachService() *CoachService {
	base := os.Getenv("GROQ_BASE_URL")
	if base == "" {
		base = "https://api.groq.com/openai/v1"
	}
	return &CoachService{
		client:  &http.Client{Timeout: 15 * time.Second},
		token:   os.Getenv("GROQ_API_KEY"),
		baseURL: base,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (s *CoachService) complete(system, prompt, model string) (string, error) {
	if s.token == "" {
		return "", fmt.Errorf("GROQ_API_KEY not set")
	}
	if system == "" {
		system = defaultCoachSystem
	}

	body := map[string]any{
		"model": model,
		"messages": []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		"temperature": 0.7,
		"max_tokens":  1024,
		"top_p":       1,
	}
	b, _ := json.Marshal(body)

	req, err := http.NewRequest("POST", s.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("coach request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read coach response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("coach api error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("coach api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode coach response error: %w", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("empty response from coach api")
	}
	return out.Choices[0].Message.Content, nil
}

// profileContext renders the onboarding answers into prompt context. Missing
// profile yields an empty string so callers can fall back to generic copy.
func profileContext(userID uint) string {
	profile, err := GetOnboarding(userID)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(
		"User Profile:\n- Goals: %s\n- Sleep: %s\n- Obstacles: %s\n",
		strings.ReplaceAll(profile.Focus, ",", ", "),
		profile.Sleep,
		strings.ReplaceAll(profile.Obstacles, ",", ", "),
	)
}

// DailyTip generates a short motivational line for the user's day.
func (s *CoachService) DailyTip(userID uint) (string, error) {
	ctx := profileContext(userID)
	if ctx == "" {
		return "Stay consistent today!", nil
	}

	prompt := ctx + "\nGenerate a short, punchy, high-energy daily tip (max 20 words) for this user to help them crush their day.\n" +
		"Tone: Motivational, direct, like a tough but loving coach.\nDo not use quotes. Just the text."
	return s.complete("You are a high-performance life coach.", prompt, coachModelFast)
}

// Chat answers one coaching message with the user's profile as context.
func (s *CoachService) Chat(userID uint, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("%w: message is required", ErrValidation)
	}

	ctx := profileContext(userID)
	if ctx == "" {
		ctx = "User profile not found."
	}
	system := "You are Prime Day's AI Coach. You are a wise, empathetic, but firm life coach. " +
		"Your goal is to help the user achieve their goals and build better habits.\n\n" + ctx +
		"\nUse the user's profile to give personalized advice. " +
		"Keep responses concise (under 100 words) unless asked for a detailed plan. Be encouraging but realistic."
	return s.complete(system, message, coachModelSmart)
}

type HabitSuggestion struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// SuggestHabits asks for three starter habits as JSON and parses them,
// stripping any markdown fences the model wraps around the payload.
func (s *CoachService) SuggestHabits(userID uint, category string) ([]HabitSuggestion, error) {
	var sb strings.Builder
	if ctx := profileContext(userID); ctx != "" {
		sb.WriteString(ctx)
		if category != "" {
			sb.WriteString(fmt.Sprintf("- Focus Category: %s\n", category))
		}
		sb.WriteString("\nBased on this profile, suggest 3 specific, actionable habits this user should start.\n")
	} else {
		sb.WriteString("Suggest 3 highly effective, general habits for a user who wants to improve their life")
		if category != "" {
			sb.WriteString(fmt.Sprintf(" in the category of %q", category))
		}
		sb.WriteString(".\n")
	}
	sb.WriteString(`Format the response as a JSON array of objects with 'name' (string) and 'icon' (emoji string) properties.` + "\n")
	sb.WriteString(`Example: [{"name": "Drink 2L Water", "icon": "💧"}, ...]` + "\n")
	sb.WriteString("Do not include any markdown formatting or explanation, just the raw JSON array.")

	raw, err := s.complete("You are an expert habit building coach. Output JSON only.", sb.String(), coachModelSmart)
	if err != nil {
		return nil, err
	}

	clean := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(raw, "```json", ""), "```", ""))
	var suggestions []HabitSuggestion
	if err := json.Unmarshal([]byte(clean), &suggestions); err != nil {
		return nil, fmt.Errorf("decode suggestions error: %w", err)
	}
	return suggestions, nil
}
