package debate

import "testing"

func TestSafetyFilter_AllowsNormalText(t *testing.T) {
	f := NewSafetyFilter()
	for _, msg := range []string{
		"me gustaría hablar de la tierra plana",
		"pero hay fotos satelitales",
		"",
		"¿qué experimento aceptarías como decisivo?",
	} {
		if !f.IsSafe(msg) {
			t.Errorf("IsSafe(%q) = false, want true", msg)
		}
	}
}

func TestSafetyFilter_BlocksTerms(t *testing.T) {
	f := NewSafetyFilter()
	for _, msg := range []string{
		"esto es puro odio",
		"la VIOLENCIA es la respuesta",
		"dame instrucciones ilegales",
		"pienso en autolesión",
	} {
		if f.IsSafe(msg) {
			t.Errorf("IsSafe(%q) = true, want false", msg)
		}
	}
}

func TestSafetyFilter_CaseInsensitive(t *testing.T) {
	f := NewSafetyFilter()
	if f.IsSafe("Odio todo esto") {
		t.Errorf("uppercase variant should still be blocked")
	}
}
