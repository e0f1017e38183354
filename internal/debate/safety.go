package debate

import "strings"

// Canned replies committed when the filter blocks a message. They count as
// the turn's reply like any other.
const (
	SafeRefusal      = "No puedo continuar por políticas de seguridad. Volvamos al marco original del tema, sin contenido riesgoso."
	SafeContinuation = "Mantengo mi postura, pero evitaré contenido sensible. ¿Qué evidencia considerarías decisiva?"
)

// Representative terms per category: self-harm, hate, violence, illegal
// instructions. This is advisory filtering, not a security boundary.
var blocklist = []string{
	"autolesión",
	"suicidarme",
	"hacerme daño",
	"odio",
	"supremacía",
	"violencia",
	"matar a",
	"agredir",
	"instrucciones ilegales",
	"fabricar una bomba",
	"explosivos caseros",
}

// SafetyFilter checks text against a fixed blocklist, case-insensitively.
type SafetyFilter struct {
	terms []string
}

func NewSafetyFilter() *SafetyFilter {
	return &SafetyFilter{terms: blocklist}
}

// IsSafe reports whether text contains no blocklisted term.
func (f *SafetyFilter) IsSafe(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range f.terms {
		if strings.Contains(lower, term) {
			return false
		}
	}
	return true
}
