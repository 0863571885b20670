//go:build !picdesk_debug

package picdesk

// invariantViolated reports a broken section table. Build with the
// picdesk_debug tag to turn this into a panic.
func invariantViolated(l *Logger, op string, err error) {
	l.Error("section invariant violated", "op", op, "error", err)
}
