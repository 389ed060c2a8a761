package domain

import (
	"fmt"
	"sync"
)

// RunLog collects the ordered, human-readable progress and warning messages
// of a discovery run. Recoverable events (skipped files, invalid package
// groups, cycle warnings) go here; run-aborting conditions travel as errors.
type RunLog struct {
	mu       sync.Mutex
	messages []string
}

// NewRunLog creates an empty run log.
func NewRunLog() *RunLog {
	return &RunLog{}
}

// Append adds one message.
func (l *RunLog) Append(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

// Appendf adds one formatted message.
func (l *RunLog) Appendf(format string, args ...any) {
	l.Append(fmt.Sprintf(format, args...))
}

// AppendAll adds a batch of messages in order.
func (l *RunLog) AppendAll(msgs []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msgs...)
}

// Messages returns a copy of the collected messages.
func (l *RunLog) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.messages))
	copy(out, l.messages)
	return out
}
