package exc

import (
	"fmt"
	"runtime"
	"strings"
)

// maxStackDepth bounds the number of program counters recorded per failure.
const maxStackDepth = 32

// callers captures the raw stack starting skip frames above the caller of
// callers. Capture is best-effort: any shortfall yields a shorter (possibly
// empty) slice, never a secondary failure.
func callers(skip int) []uintptr {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return nil
	}
	return append([]uintptr(nil), pcs[:n]...)
}

// writeFrames resolves program counters through runtime.CallersFrames, which
// expands inlined calls, and writes one numbered line per frame.
func writeFrames(b *strings.Builder, pcs []uintptr) {
	frames := runtime.CallersFrames(pcs)
	for i := 0; ; i++ {
		fr, more := frames.Next()
		fmt.Fprintf(b, "#%d  %s:%d  %s\n", i, fr.File, fr.Line, fr.Function)
		if !more {
			break
		}
	}
}
