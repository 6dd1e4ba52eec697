package gallery

import (
	"fmt"
	"io"
	"os"
)

// debugOutput receives debug lines. Tests swap it for a buffer.
var debugOutput io.Writer = os.Stderr

// SetDebugMode enables or disables debug mode. When enabled, layout changes,
// drag transitions and activations are printed to stderr.
func (p *Positioner) SetDebugMode(enabled bool) {
	p.debug = enabled
}

// debugf prints one prefixed line when debug mode is on.
func (p *Positioner) debugf(format string, args ...any) {
	if !p.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[gallery] "+format+"\n", args...)
}
