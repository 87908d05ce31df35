// Package session owns the in-memory résumé for one user context and funnels
// every mutation through a single write-through update.
package session

import "fmt"

// IndexError indicates a list element index outside the current list
type IndexError struct {
	Section string
	Index   int
	Len     int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range (len %d)", e.Section, e.Index, e.Len)
}

// UnknownFieldError indicates a top-level field name that cannot be set as a string
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field: %s", e.Field)
}

// UnknownCategoryError indicates a skill category other than technical, soft, or tools
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown skill category: %s", e.Category)
}

func checkIndex(section string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Section: section, Index: i, Len: n}
	}
	return nil
}
