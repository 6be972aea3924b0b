package exercise

// MaxHintLevel caps the hint ladder. Levels run 1 (gentle nudge) to 3
// (nearly the answer); level 0 means no hint taken yet.
const MaxHintLevel = 3

// HintLadder tracks the escalating hints shown during one attempt.
// Each level is fetched at most once; asking past the cap replays the
// last hint instead of fetching again.
type HintLadder struct {
	hints []string
}

// Level returns the current escalation level, 0 to MaxHintLevel.
func (h *HintLadder) Level() int { return len(h.hints) }

// Used returns how many hints have been shown.
func (h *HintLadder) Used() int { return len(h.hints) }

// AtCap reports whether the ladder is exhausted.
func (h *HintLadder) AtCap() bool { return len(h.hints) >= MaxHintLevel }

// Last returns the most recent hint, or "" if none was taken.
func (h *HintLadder) Last() string {
	if len(h.hints) == 0 {
		return ""
	}
	return h.hints[len(h.hints)-1]
}

// All returns the hints shown so far, in escalation order.
func (h *HintLadder) All() []string {
	out := make([]string, len(h.hints))
	copy(out, h.hints)
	return out
}

// NextLevel returns the level the next fetch should ask for.
func (h *HintLadder) NextLevel() int { return len(h.hints) + 1 }

// Record stores a fetched hint and advances the level.
func (h *HintLadder) Record(hint string) {
	h.hints = append(h.hints, hint)
}
