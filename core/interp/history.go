package interp

// RecallMarker re-executes the most recently recorded line.
const RecallMarker = "!!"

// History is a single-slot record of the last line that was not itself a
// recall. It is owned by one Interpreter and never shared.
type History struct {
	last string
}

// Record stores line verbatim unless its first token is the recall marker,
// so a recalled command never overwrites the cell with the marker itself.
func (h *History) Record(line string) {
	if first, _ := Split(line, 1); len(first) == 1 && first[0] == RecallMarker {
		return
	}
	h.last = line
}

// Recall returns the stored line. ok is false when nothing has been
// recorded yet.
func (h *History) Recall() (line string, ok bool) {
	return h.last, h.last != ""
}
