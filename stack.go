// stack.go: call-site capture for origins.
//
// Design goals:
//   - Use runtime.Callers + runtime.CallersFrames for accurate frame
//     resolution (handles inlining correctly).
//   - Bounded depth; capture only happens when WithOrigin is called.
package fault

import (
	"runtime"
	"strings"
)

// frame is a single call site in a captured stack.
type frame struct {
	File     string // absolute file path (as provided by runtime)
	Line     int    // line number
	Function string // fully-qualified function name (pkg.Func or method)
}

// callStack lists frames from the most recent call outward.
type callStack []frame

// defaultMaxDepth bounds how many frames are resolved when looking for an
// origin.
const defaultMaxDepth = 32

// pkgPath is the import path of this package, derived from a local symbol so
// it survives module renames and vendoring.
var pkgPath = func() string {
	pc, _, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	return funcPackage(fn.Name())
}()

// funcPackage returns the import path portion of a fully-qualified function
// name ("example.com/a/b.T.m" → "example.com/a/b").
func funcPackage(name string) string {
	slash := strings.LastIndexByte(name, '/')
	dot := strings.IndexByte(name[slash+1:], '.')
	if dot < 0 {
		return name
	}
	return name[:slash+1+dot]
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames
// beyond captureStack itself.
func captureStack(skip, maxDepth int) callStack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	// +2 skips runtime.Callers and captureStack.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(callStack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, frame{
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// internal reports whether fn belongs to this package or one of its
// sub-packages.
func internal(fn string) bool {
	if pkgPath == "" {
		return false
	}
	pkg := funcPackage(fn)
	return pkg == pkgPath || strings.HasPrefix(pkg, pkgPath+"/")
}

// firstForeign returns the first frame with a file, a positive line and a
// function outside this package tree.
func (s callStack) firstForeign() (Origin, bool) {
	for _, fr := range s {
		if fr.File == "" || fr.Line < 1 {
			continue
		}
		if internal(fr.Function) {
			continue
		}
		return Origin{File: fr.File, Line: fr.Line}, true
	}
	return Origin{}, false
}

// callerOrigin captures the calling stack and returns the first frame
// outside this package tree.
func callerOrigin() (Origin, bool) {
	return captureStack(1, defaultMaxDepth).firstForeign()
}
