package dialogue

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryCapacityInvariant(t *testing.T) {
	h := NewHistory(5)
	for i := 0; i < 20; i++ {
		h.Append(Turn{Utterance: strconv.Itoa(i)})
		assert.LessOrEqual(t, h.Len(), 5)
	}
	assert.Equal(t, 5, h.Len())
}

func TestHistoryEvictsOldestFirst(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Append(Turn{Utterance: strconv.Itoa(i)})
	}

	last := h.Last(3)
	assert.Equal(t, "2", last[0].Utterance)
	assert.Equal(t, "3", last[1].Utterance)
	assert.Equal(t, "4", last[2].Utterance)
}

func TestHistoryLastClampsToSize(t *testing.T) {
	h := NewHistory(10)
	h.Append(Turn{Utterance: "a"})
	h.Append(Turn{Utterance: "b"})

	last := h.Last(100)
	assert.Len(t, last, 2)
	assert.Equal(t, "a", last[0].Utterance)
}

func TestHistoryMinimumCapacity(t *testing.T) {
	h := NewHistory(0)
	h.Append(Turn{Utterance: "a"})
	h.Append(Turn{Utterance: "b"})
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, "b", h.Last(1)[0].Utterance)
}
