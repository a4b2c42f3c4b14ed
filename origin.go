package fault

import (
	"fmt"
	"strconv"
)

// Origin is the file/line call site recorded for a layer.
type Origin struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// Valid reports whether o has a file and a positive line.
func (o Origin) Valid() bool { return o.File != "" && o.Line >= 1 }

// String renders o as "file:line", the key Origins de-duplicates on.
func (o Origin) String() string { return o.File + ":" + strconv.Itoa(o.Line) }

var _ fmt.Stringer = Origin{}
