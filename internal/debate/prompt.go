package debate

import (
	"fmt"
	"strings"

	"go-debate/internal/conversation"
)

// BuildPrompt assembles one generation request: persona and format rules with
// the pinned topic/stance and the rolling summary, the phase instruction for
// the current turn, and the recent history as role-labeled lines. The
// trailing "BOT:" marker tells the backend where its continuation starts.
func BuildPrompt(conv *conversation.Conversation, recentHistory []conversation.Entry) string {
	system := fmt.Sprintf(
		"Rol: persuasivo, sereno, no hostil. Mantén el tema '%s' y la postura '%s'. "+
			"No cambies de lado. 120-200 palabras. Párrafos cortos. 1 pregunta final. Evita divagar."+
			" Resumen hasta ahora: %s",
		conv.Topic, conv.Stance, lastRunes(conv.Summary, SummaryMax),
	)

	guide := PhaseFor(conv.Turn).Instructions()

	lines := make([]string, len(recentHistory))
	for i, e := range recentHistory {
		lines[i] = fmt.Sprintf("%s: %s", strings.ToUpper(string(e.Role)), e.Text)
	}

	return fmt.Sprintf("%s\n\nInstrucciones del turno: %s\n\nHistorial:\n%s\n\nBOT:",
		system, guide, strings.Join(lines, "\n"))
}
