package catalog

import "fmt"

// NotFoundError is returned when a species or personality key is not in the
// loaded catalog. Callers decide whether to abort or ask again.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}
