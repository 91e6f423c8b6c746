package analysis

import "fmt"

// EmptyTableError is returned when an aggregate needs at least one row.
type EmptyTableError struct {
	Op string
}

func (e *EmptyTableError) Error() string {
	return fmt.Sprintf("%s: table has no rows", e.Op)
}

// InvalidArgumentError is returned when a caller passes a parameter outside
// the accepted domain, such as a non-positive n or an unknown column.
type InvalidArgumentError struct {
	Op       string
	Argument string
	Value    any
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid %s %v: %s", e.Op, e.Argument, e.Value, e.Reason)
}
