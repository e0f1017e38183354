package debate

// Summary bounds. Counts are in characters (runes), so multibyte text never
// splits mid-character.
const (
	SummaryMax      = 350
	replyExcerptMax = 200
)

// UpdateSummary folds a new reply into the rolling summary: the first 200
// characters of the reply are appended behind a separator and the combined
// result keeps only its last 350 characters, dropping the oldest content
// first. Lossy on purpose — it bounds prompt size for any conversation
// length.
func UpdateSummary(oldSummary, reply string) string {
	merged := oldSummary + " | " + firstRunes(reply, replyExcerptMax)
	return lastRunes(merged, SummaryMax)
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func lastRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
