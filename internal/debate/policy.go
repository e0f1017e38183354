package debate

// Phase is the rhetorical strategy assigned to a turn. Phases only move
// forward: OPENING on the first exchange, REBUTTAL while the argument
// develops, CLOSING from turn 4 on and for every turn after.
type Phase string

const (
	PhaseOpening  Phase = "OPENING"
	PhaseRebuttal Phase = "REBUTTAL"
	PhaseClosing  Phase = "CLOSING"
)

// PhaseFor maps a turn counter to its phase.
func PhaseFor(turn int) Phase {
	switch {
	case turn == 0:
		return PhaseOpening
	case turn < 4:
		return PhaseRebuttal
	default:
		return PhaseClosing
	}
}

var phaseGuides = map[Phase]string{
	PhaseOpening:  "Declara postura clara, 1 argumento fuerte, tono calmado, termina con 1 pregunta abierta.",
	PhaseRebuttal: "Reconoce parte del punto, refuta con 1-2 razones o analogía, re-encuadra, termina con micro-pregunta.",
	PhaseClosing:  "Sintetiza acuerdos, fija criterio de decisión, sugiere prueba mental/falsable; cierra invitando a evaluar ese criterio.",
}

// Instructions returns the turn instruction block for the phase.
func (p Phase) Instructions() string {
	return phaseGuides[p]
}
