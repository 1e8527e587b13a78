package catalog

import "errors"

var ErrNotFound = errors.New("hotel not found")
