// Package chat implements the SerenAI companion: a transcript plus a
// pluggable responder, either scripted or LLM-backed.
package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mindease/mindease/internal"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

type Message struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
	Text string `json:"text"`
}

const Greeting = "I'm SerenAI, your mindful companion. I'm here to listen, support, and help you find your way back to calm. How is your heart feeling right now?"

const fallbackReply = "I apologize, my connection is a bit fuzzy. Let's try again in a moment."

// SuggestionChips are conversation starters the shell can offer.
var SuggestionChips = []string{
	"I feel overwhelmed",
	"I need to vent about work",
	"Help me find focus",
	"Tell me something peaceful",
}

// Responder produces one reply for one user message.
type Responder interface {
	Reply(ctx context.Context, text string) (string, error)
}

// Companion owns the conversation transcript. A responder failure never
// drops the user's message; the canned fallback line is appended instead.
type Companion struct {
	mu        sync.Mutex
	messages  []Message
	responder Responder
	logger    internal.Logger
}

func NewCompanion(responder Responder, logger internal.Logger) *Companion {
	return &Companion{
		messages:  []Message{{ID: "1", Role: RoleModel, Text: Greeting}},
		responder: responder,
		logger:    logger,
	}
}

// Send appends the user message, asks the responder, and appends the reply.
func (c *Companion) Send(ctx context.Context, text string) (Message, error) {
	c.mu.Lock()
	c.messages = append(c.messages, Message{ID: nextID(), Role: RoleUser, Text: text})
	c.mu.Unlock()

	reply, err := c.responder.Reply(ctx, text)
	if err != nil {
		c.logger.Errorf("chat: responder failed: %v", err)
		reply = fallbackReply
	}

	msg := Message{ID: nextID(), Role: RoleModel, Text: reply}
	c.mu.Lock()
	c.messages = append(c.messages, msg)
	c.mu.Unlock()
	return msg, err
}

// Messages returns a copy of the transcript.
func (c *Companion) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func nextID() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}
