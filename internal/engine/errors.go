package engine

import "fmt"

// CapacityError is returned by Service.Adopt when the tank is full.
type CapacityError struct {
	Limit int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("the tank is full (limit %d)", e.Limit)
}

// NameTakenError is returned when another fish already has the name,
// ignoring case.
type NameTakenError struct {
	Name string
}

func (e NameTakenError) Error() string {
	return fmt.Sprintf("a fish named %q already lives here", e.Name)
}
