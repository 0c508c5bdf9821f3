package dialogue

import "time"

// Turn is one completed exchange: what the user said, how it was understood
// and what was answered. Turns are immutable once appended.
type Turn struct {
	Utterance string
	Intent    string
	Sentiment string
	Response  string
	Timestamp time.Time
}

// History is a fixed-capacity ring buffer of the most recent turns. When
// full, the oldest turn is evicted first.
type History struct {
	turns []Turn
	head  int
	size  int
}

// NewHistory returns a history bounded to capacity turns.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{turns: make([]Turn, capacity)}
}

// Append records a turn, evicting the oldest when the buffer is full.
func (h *History) Append(t Turn) {
	h.turns[(h.head+h.size)%len(h.turns)] = t
	if h.size < len(h.turns) {
		h.size++
	} else {
		h.head = (h.head + 1) % len(h.turns)
	}
}

// Len returns the number of stored turns.
func (h *History) Len() int { return h.size }

// Last returns up to n most recent turns, oldest first.
func (h *History) Last(n int) []Turn {
	if n > h.size {
		n = h.size
	}
	out := make([]Turn, 0, n)
	for i := h.size - n; i < h.size; i++ {
		out = append(out, h.turns[(h.head+i)%len(h.turns)])
	}
	return out
}
