package dialogue

// Section records a section-marker line ("=== ..." banner) in a transcript.
// Turns hold a back-reference to the most recent section seen; the pointer is
// shared, never mutated after the parser assigns it.
type Section struct {
	Line  int
	Label string
}

// Turn is one parsed speaker/message unit. Immutable once parsed; the ordered
// Turn slice is the sole carrier of dialogue state.
type Turn struct {
	Line    int
	Speaker string
	Message string
	Section *Section
}

// Transcript holds the fully parsed result of a dialogue file.
type Transcript struct {
	Turns []Turn
	Lines int // total lines scanned, dialogue or not
}
