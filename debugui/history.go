package debugui

// History is a fixed-size ring of samples plotted by the panels.
type History struct {
	values []float32
	next   int
	filled int
}

func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{values: make([]float32, size)}
}

func (h *History) Push(v float32) {
	h.values[h.next] = v
	h.next = (h.next + 1) % len(h.values)
	if h.filled < len(h.values) {
		h.filled++
	}
}

// Average is the mean of the samples pushed so far, or 0 when empty.
func (h *History) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for i := range h.filled {
		sum += h.values[i]
	}
	return sum / float32(h.filled)
}

func (h *History) Max() float32 {
	var m float32
	for i := range h.filled {
		m = max(m, h.values[i])
	}
	return m
}

// Values returns the backing ring. Plots take a pointer to its first element.
func (h *History) Values() []float32 {
	return h.values
}

func (h *History) Len() int {
	return h.filled
}
