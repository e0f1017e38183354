package llm

import (
	"context"
	"strings"
	"time"
)

// RuleBackend is the deterministic local fallback: it keys a canned debate
// reply on the last user utterance in the prompt transcript. It has no
// external dependencies and never fails, so the chain always produces text.
type RuleBackend struct{}

func NewRuleBackend() *RuleBackend {
	return &RuleBackend{}
}

func (b *RuleBackend) Name() string {
	return "rules"
}

type rule struct {
	keywords []string
	reply    string
}

var fallbackRules = []rule{
	{
		keywords: []string{"foto", "satelit", "nasa", "espacio"},
		reply: "Entiendo que menciones fotos; cuestiono su interpretación y calibración. " +
			"Sigo en mi postura por observaciones a nivel del mar y horizontes constantes. " +
			"¿Qué medición directa aceptarías como concluyente?",
	},
	{
		keywords: []string{"avion", "vuelan", "derech"},
		reply: "Que un avión 'vuele recto' no implica curvatura perceptible: sigue superficies isobáricas y rutas óptimas. " +
			"Mantengo mi postura. ¿Compararías desvíos en una ruta larga con y sin curvatura?",
	},
}

const fallbackDefault = "Reconozco parte de tu punto, pero sostengo mi postura por consistencia en observaciones locales. " +
	"¿Qué experimento aceptarías como decisivo?"

func (b *RuleBackend) Generate(ctx context.Context, prompt string, maxTokens int, timeout time.Duration) (string, error) {
	lastUser := lastUserLine(prompt)
	for _, r := range fallbackRules {
		for _, kw := range r.keywords {
			if strings.Contains(lastUser, kw) {
				return r.reply, nil
			}
		}
	}
	return fallbackDefault, nil
}

// lastUserLine scans the prompt transcript bottom-up for the newest USER:
// line and returns its text lowercased.
func lastUserLine(prompt string) string {
	lines := strings.Split(prompt, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if rest, ok := strings.CutPrefix(lines[i], "USER:"); ok {
			return strings.ToLower(strings.TrimSpace(rest))
		}
	}
	return ""
}
