package model

// LabelIndex assigns each class name a unique integer id in the order names
// are added. The corpus loader adds names in sorted directory order, so ids
// are stable across runs of the same corpus.
type LabelIndex struct {
	ids   map[string]int
	names []string
}

// NewLabelIndex returns an empty index.
func NewLabelIndex() *LabelIndex {
	return &LabelIndex{ids: make(map[string]int)}
}

// Add returns the id for name, assigning the next free id on first sight.
func (li *LabelIndex) Add(name string) int {
	if id, ok := li.ids[name]; ok {
		return id
	}
	id := len(li.names)
	li.ids[name] = id
	li.names = append(li.names, name)
	return id
}

// ID returns the id for a known class name.
func (li *LabelIndex) ID(name string) (int, bool) {
	id, ok := li.ids[name]
	return id, ok
}

// Name returns the class name for an id, or "" if the id is out of range.
func (li *LabelIndex) Name(id int) string {
	if id < 0 || id >= len(li.names) {
		return ""
	}
	return li.names[id]
}

// Len returns the number of classes.
func (li *LabelIndex) Len() int {
	return len(li.names)
}

// Names returns the class names in id order.
func (li *LabelIndex) Names() []string {
	out := make([]string, len(li.names))
	copy(out, li.names)
	return out
}
