package renderer

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to an output stream, stderr unless set otherwise.
// Progress goes to stderr so a PPM image can be streamed to stdout.
type DefaultLogger struct {
	Out io.Writer
}

// Printf formats and writes a message to Out
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	out := dl.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
