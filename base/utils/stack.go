package utils

import (
	"bytes"
	"fmt"
	"runtime"
)

const maxStackDepth = 64

// Stack returns a formatted stack trace of the calling goroutine, skipping the
// given number of frames above Stack itself.
func Stack(skip int) []byte {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	buf := new(bytes.Buffer)
	for {
		frame, more := frames.Next()
		fmt.Fprintf(buf, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return buf.Bytes()
}
