package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary keys into random readable names. Vertex 17 of a
// figure is easy to confuse with vertex 71 when staring at a report; "Shy
// Gopher" and "Brave Otter" are not. The memo grows without bound, which is
// fine for debugging output.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the readable name for a comparable key, such as a vertex index
// or an edge.
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

type vertexKey int

// VertexName names a figure vertex.
func VertexName(v int) string {
	return fmt.Sprintf("%d:%s", v, Name(vertexKey(v)))
}
