package mutate

import "fmt"

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// CycleError reports a nest that would make a page its own ancestor.
type CycleError struct {
	PageID   string
	ParentID string
}

func (e CycleError) Error() string {
	return fmt.Sprintf("cannot nest page %s under %s: would create a cycle", e.PageID, e.ParentID)
}

type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return ValidationError{Msg: fmt.Sprintf(format, args...)}
}
