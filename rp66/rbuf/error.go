package rbuf

import (
	"fmt"
)

type (
	InvalidBufferError struct {
		Offset int
		Need   int
		Have   int
	}
)

func (r InvalidBufferError) Error() string {
	return fmt.Sprintf(
		"buffer too short: need %d bytes at offset %d; have %d",
		r.Need, r.Offset, r.Have,
	)
}
