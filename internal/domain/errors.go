package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidGroupingKey is returned when a stats query is asked to group
	// by a field outside its family.
	ErrInvalidGroupingKey = errors.New("invalid grouping key")
	ErrLinkNotFound       = errors.New("link not found")
	ErrInvalidDays        = errors.New("days must be an integer")
)

// GroupingKeyError describes a rejected grouping key.
type GroupingKeyError struct {
	Family  string
	Key     string
	Allowed []string
}

func (e *GroupingKeyError) Error() string {
	return fmt.Sprintf("invalid '%s' groupBy parameter %q: must be one of %s",
		e.Family, e.Key, strings.Join(e.Allowed, ", "))
}

// Is lets errors.Is match ErrInvalidGroupingKey.
func (e *GroupingKeyError) Is(target error) bool {
	return target == ErrInvalidGroupingKey
}
