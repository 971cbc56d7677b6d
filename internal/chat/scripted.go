package chat

import (
	"context"
	"strings"
)

// Scripted is the offline responder: keyword-matched canned replies in the
// companion's voice. Used whenever no API key is configured.
type Scripted struct{}

var scriptedReplies = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"overwhelm", "too much", "stressed", "stress"},
		reply:    "That sounds heavy. Let's slow things down together — would a short breathing exercise from the toolkit help right now?",
	},
	{
		keywords: []string{"work", "job", "boss", "deadline"},
		reply:    "Work can take up so much space in the mind. What is one small thing you could set down before the end of today?",
	},
	{
		keywords: []string{"sleep", "tired", "exhausted"},
		reply:    "Rest is a courageous act of self-care. Has your sleep felt different lately?",
	},
	{
		keywords: []string{"focus", "distract"},
		reply:    "Focus follows calm. Try naming the one thing that matters most in the next hour, and let the rest wait.",
	},
	{
		keywords: []string{"sad", "down", "lonely"},
		reply:    "Thank you for trusting me with that. Feelings like this deserve space — I'm here, and there is no rush.",
	},
}

const scriptedDefault = "I hear you. Tell me more about what's on your mind — sometimes just naming a feeling softens it."

func (Scripted) Reply(ctx context.Context, text string) (string, error) {
	lower := strings.ToLower(text)
	for _, r := range scriptedReplies {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.reply, nil
			}
		}
	}
	return scriptedDefault, nil
}
