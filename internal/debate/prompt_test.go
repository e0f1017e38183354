package debate

import (
	"strings"
	"testing"

	"go-debate/internal/conversation"
)

func TestBuildPrompt_ContainsAllBlocks(t *testing.T) {
	conv := &conversation.Conversation{
		Topic:   "Forma de la Tierra",
		Stance:  "La Tierra es plana",
		Summary: "resumen previo",
		Turn:    0,
	}
	history := []conversation.Entry{
		{Role: conversation.RoleUser, Text: "me gustaría hablar de la tierra plana"},
	}

	prompt := BuildPrompt(conv, history)

	for _, want := range []string{
		"Forma de la Tierra",
		"La Tierra es plana",
		"resumen previo",
		PhaseOpening.Instructions(),
		"USER: me gustaría hablar de la tierra plana",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.HasSuffix(prompt, "BOT:") {
		t.Errorf("prompt must end with the continuation marker, got %q", prompt[len(prompt)-20:])
	}
}

func TestBuildPrompt_PhaseFollowsTurn(t *testing.T) {
	conv := &conversation.Conversation{Topic: "t", Stance: "s", Turn: 2}
	prompt := BuildPrompt(conv, nil)
	if !strings.Contains(prompt, PhaseRebuttal.Instructions()) {
		t.Errorf("turn 2 prompt should carry the rebuttal instructions")
	}

	conv.Turn = 7
	prompt = BuildPrompt(conv, nil)
	if !strings.Contains(prompt, PhaseClosing.Instructions()) {
		t.Errorf("turn 7 prompt should carry the closing instructions")
	}
}

func TestBuildPrompt_TranscriptChronological(t *testing.T) {
	conv := &conversation.Conversation{Topic: "t", Stance: "s"}
	history := []conversation.Entry{
		{Role: conversation.RoleUser, Text: "primero"},
		{Role: conversation.RoleBot, Text: "segundo"},
		{Role: conversation.RoleUser, Text: "tercero"},
	}
	prompt := BuildPrompt(conv, history)

	i1 := strings.Index(prompt, "USER: primero")
	i2 := strings.Index(prompt, "BOT: segundo")
	i3 := strings.Index(prompt, "USER: tercero")
	if i1 < 0 || i2 < 0 || i3 < 0 || !(i1 < i2 && i2 < i3) {
		t.Errorf("transcript out of order: %d %d %d", i1, i2, i3)
	}
}
