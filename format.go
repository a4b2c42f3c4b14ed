// format.go: fmt.Formatter for Layer.
//
// Behavior:
//
//	%s, %v   → concise string (Error()).
//	%q       → quoted Error().
//	%+v      → verbose, structured multi-line format:
//	             code=<code> msg="<message>"
//	             public: "<newest>" "<older>"
//	             ctx: key1=val1 key2=val2 ...
//	             origin: file.go:123
//	             cause: <recursively formatted with %+v>
//
// Only this layer's own metadata is printed; the cause recursion renders the
// rest of the chain.
package fault

import (
	"fmt"
	"io"
)

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes the structured multi-line representation of l.
func formatVerbose(w io.Writer, l *Layer) {
	if !l.code.IsZero() {
		_, _ = fmt.Fprintf(w, "code=%s ", l.code)
	}
	// Always quote message for clarity (even if empty).
	_, _ = fmt.Fprintf(w, "msg=%q", l.msg)

	if len(l.publics) > 0 {
		_, _ = io.WriteString(w, "\npublic:")
		for _, p := range l.publics {
			_, _ = fmt.Fprintf(w, " %q", p)
		}
	}

	if len(l.ctx) > 0 {
		_, _ = io.WriteString(w, "\nctx:")
		for _, f := range l.ctx {
			_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
		}
	}

	if o, ok := l.Origin(); ok {
		_, _ = fmt.Fprintf(w, "\norigin: %s", o)
	}

	if l.prev != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", l.prev)
	}
}

func (l *Layer) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && l != nil {
			formatVerbose(s, l)
			return
		}
		formatConcise(s, l)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", l.Error())
	default:
		formatConcise(s, l)
	}
}
