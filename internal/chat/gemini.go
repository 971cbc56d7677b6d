package chat

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.0-flash"

const systemInstruction = "You are SerenAI, an empathetic, validating, non-clinical AI mental health companion. " +
	"Your tone is warm, calm, and reassuring. Use gentle language and focus on emotional validation. " +
	"If the user mentions crisis or self-harm, gently provide hotline resources and emphasize you are an AI, not a therapist."

// Gemini answers through Google's Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Gemini{client: client, model: geminiModel}, nil
}

func (g *Gemini) Reply(ctx context.Context, text string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(text),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0.7),
		},
	)
	if err != nil {
		return "", fmt.Errorf("generate reply: %w", err)
	}
	reply := result.Text()
	if reply == "" {
		return "I'm here for you, but I'm having a little trouble connecting. Could you say that again?", nil
	}
	return reply, nil
}
