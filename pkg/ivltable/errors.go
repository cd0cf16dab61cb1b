package ivltable

import "fmt"

// InvalidIndexError is returned by Get, Remove and Set when the offset
// does not address an occupied slot. The table is left unmodified.
type InvalidIndexError struct {
	Offset int
}

func (r *InvalidIndexError) Error() string {
	return fmt.Sprintf("no entry at offset %d", r.Offset)
}
