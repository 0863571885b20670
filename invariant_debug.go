//go:build picdesk_debug

package picdesk

import "fmt"

func invariantViolated(_ *Logger, op string, err error) {
	panic(fmt.Sprintf("picdesk: section invariant violated after %s: %v", op, err))
}
