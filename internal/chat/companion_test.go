package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindease/mindease/internal"
)

type stubResponder struct {
	reply string
	err   error
}

func (s stubResponder) Reply(ctx context.Context, text string) (string, error) {
	return s.reply, s.err
}

func TestCompanionStartsWithGreeting(t *testing.T) {
	c := NewCompanion(stubResponder{}, internal.NopLogger{})

	msgs := c.Messages()
	assert.Len(t, msgs, 1)
	assert.Equal(t, RoleModel, msgs[0].Role)
	assert.Equal(t, Greeting, msgs[0].Text)
}

func TestCompanionAppendsBothSides(t *testing.T) {
	c := NewCompanion(stubResponder{reply: "breathe with me"}, internal.NopLogger{})

	msg, err := c.Send(context.Background(), "I feel tense")
	assert.NoError(t, err)
	assert.Equal(t, "breathe with me", msg.Text)

	msgs := c.Messages()
	assert.Len(t, msgs, 3)
	assert.Equal(t, RoleUser, msgs[1].Role)
	assert.Equal(t, "I feel tense", msgs[1].Text)
	assert.Equal(t, RoleModel, msgs[2].Role)
}

func TestCompanionFallbackKeepsUserMessage(t *testing.T) {
	c := NewCompanion(stubResponder{err: errors.New("upstream down")}, internal.NopLogger{})

	msg, err := c.Send(context.Background(), "hello?")
	assert.Error(t, err)
	assert.Equal(t, fallbackReply, msg.Text)

	msgs := c.Messages()
	assert.Len(t, msgs, 3)
	assert.Equal(t, "hello?", msgs[1].Text)
	assert.Equal(t, fallbackReply, msgs[2].Text)
}

func TestCompanionMessagesReturnsCopy(t *testing.T) {
	c := NewCompanion(stubResponder{reply: "ok"}, internal.NopLogger{})

	msgs := c.Messages()
	msgs[0].Text = "mutated"
	assert.Equal(t, Greeting, c.Messages()[0].Text)
}

func TestScriptedMatchesKeywords(t *testing.T) {
	s := Scripted{}
	ctx := context.Background()

	reply, err := s.Reply(ctx, "Everything feels like TOO MUCH today")
	assert.NoError(t, err)
	assert.Contains(t, reply, "slow things down")

	reply, err = s.Reply(ctx, "my boss keeps piling on")
	assert.NoError(t, err)
	assert.Contains(t, reply, "Work")
}

func TestScriptedFallsBackToDefault(t *testing.T) {
	reply, err := Scripted{}.Reply(context.Background(), "the weather is nice")
	assert.NoError(t, err)
	assert.Equal(t, scriptedDefault, reply)
}
