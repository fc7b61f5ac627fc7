package difflog

// zeroVertex is the synthetic vertex id whose intended potential is 0,
// letting a unary atom "x ⟨rel⟩ c" be represented as "x - 0 ⟨rel⟩ c".
const zeroVertex = 0

// vertexTable maps problem-variable names to ids assigned in first-seen
// order over the atom set given at Create. The mapping is fixed once built
// and never grows (spec §3: "never grows").
type vertexTable struct {
	ids   map[string]int
	names []string // names[0] is unused padding, so names[id] == name
}

func newVertexTable() *vertexTable {
	return &vertexTable{
		ids:   make(map[string]int),
		names: []string{""}, // index 0 reserved for the zero vertex
	}
}

// intern returns the id for name, assigning a fresh one (1, 2, ...) the
// first time it is seen. An empty name always resolves to the zero vertex.
func (vt *vertexTable) intern(name string) int {
	if name == "" {
		return zeroVertex
	}
	if id, ok := vt.ids[name]; ok {
		return id
	}
	id := len(vt.names)
	vt.ids[name] = id
	vt.names = append(vt.names, name)
	return id
}

// lookup resolves an already-interned name without creating a new id. ok is
// false for a name never seen at Create time.
func (vt *vertexTable) lookup(name string) (id int, ok bool) {
	if name == "" {
		return zeroVertex, true
	}
	id, ok = vt.ids[name]
	return id, ok
}

// size returns the number of vertices including the zero vertex.
func (vt *vertexTable) size() int { return len(vt.names) }

// Name returns the problem-variable name for id, or "" for the zero vertex.
func (vt *vertexTable) Name(id int) string {
	if id <= 0 || id >= len(vt.names) {
		return ""
	}
	return vt.names[id]
}
