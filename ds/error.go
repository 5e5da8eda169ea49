package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode marks a state-machine branch that no valid state
	// can reach.
	ErrUnreachableCode struct {
		Caller string
	}
)

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s: unreachable code", r.Caller)
}
