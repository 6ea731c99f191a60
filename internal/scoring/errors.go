package scoring

import "fmt"

// UnknownGroupError reports a request to score against a keyword group that
// does not exist in the scorer's table. This is a programming error on the
// caller's side, not a data-quality issue, so it is surfaced explicitly
// rather than silently absorbed.
type UnknownGroupError struct {
	Name string
}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("unknown keyword group: %q", e.Name)
}
