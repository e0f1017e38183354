package llm

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestRuleBackend_KeywordReplies(t *testing.T) {
	b := NewRuleBackend()
	ctx := context.Background()

	cases := []struct {
		lastUser string
		wantFrag string
	}{
		{"pero hay fotos satelitales", "fotos"},
		{"los aviones vuelan en línea recta", "avión"},
		{"no estoy de acuerdo contigo", "experimento"},
	}
	for _, tc := range cases {
		prompt := "Rol: persuasivo.\n\nHistorial:\nUSER: hola\nBOT: postura\nUSER: " + tc.lastUser + "\n\nBOT:"
		got, err := b.Generate(ctx, prompt, 512, time.Second)
		if err != nil {
			t.Fatalf("rule backend must never fail: %v", err)
		}
		if !strings.Contains(strings.ToLower(got), tc.wantFrag) {
			t.Errorf("Generate for %q = %q, want mention of %q", tc.lastUser, got, tc.wantFrag)
		}
	}
}

func TestRuleBackend_KeysOnNewestUserLine(t *testing.T) {
	b := NewRuleBackend()
	prompt := "Historial:\nUSER: pero hay fotos satelitales\nBOT: las cuestiono\nUSER: vale, hablemos de otra cosa\n\nBOT:"
	got, _ := b.Generate(context.Background(), prompt, 512, time.Second)
	if got != fallbackDefault {
		t.Errorf("expected the default reply for the newest user line, got %q", got)
	}
}

func TestRuleBackend_NoUserLine(t *testing.T) {
	b := NewRuleBackend()
	got, err := b.Generate(context.Background(), "sin transcripción", 512, time.Second)
	if err != nil || got == "" {
		t.Errorf("expected default reply, got (%q, %v)", got, err)
	}
}

func TestLastUserLine(t *testing.T) {
	prompt := "USER: primero\nBOT: algo\nUSER:   Segundo Mensaje  \nBOT:"
	if got := lastUserLine(prompt); got != "segundo mensaje" {
		t.Errorf("lastUserLine = %q", got)
	}
	if got := lastUserLine("nada"); got != "" {
		t.Errorf("expected empty for promptless input, got %q", got)
	}
}
