package repository

import "fmt"

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = fmt.Errorf("not found")
