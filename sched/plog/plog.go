// Package plog provides the per-processor append-only log buffer used
// by the parallel driver (§5: "Logs are per-processor append-only and
// merged only after join"). It is grounded on the teacher's decision
// trace (sim/trace), adapted from recording admission/routing decisions
// to recording schedulability diagnostics.
package plog

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Buffer collects log lines for a single worker. It is not safe for
// concurrent use by multiple goroutines — each processor owns exactly
// one Buffer, matching the shared-nothing worker model.
type Buffer struct {
	lines []string
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// Logf appends a formatted line to the buffer.
func (b *Buffer) Logf(format string, args ...any) {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
}

// Lines returns the buffer's accumulated lines in append order.
func (b *Buffer) Lines() []string {
	return b.lines
}

// FlushTo emits every buffered line through logger at Info level,
// tagged with the processor index, then clears the buffer. Called
// after join so that concurrent workers' diagnostics never interleave.
func FlushTo(logger logrus.FieldLogger, processorID int, b *Buffer) {
	entry := logger.WithField("processor", processorID)
	for _, line := range b.lines {
		entry.Info(line)
	}
	b.lines = nil
}
