package content

// History is a stack of visited paths for back navigation.
type History struct {
	Stack []string
}

// Push adds a path to the top of the stack.
func (h *History) Push(path string) {
	h.Stack = append(h.Stack, path)
}

// Pop removes and returns the top path.
// Returns false if the stack is empty.
func (h *History) Pop() (string, bool) {
	if len(h.Stack) == 0 {
		return "", false
	}
	top := h.Stack[len(h.Stack)-1]
	h.Stack = h.Stack[:len(h.Stack)-1]
	return top, true
}

// Peek returns the top path without removing it.
func (h *History) Peek() (string, bool) {
	if len(h.Stack) == 0 {
		return "", false
	}
	return h.Stack[len(h.Stack)-1], true
}

// Len returns the number of paths in the stack.
func (h *History) Len() int {
	return len(h.Stack)
}
