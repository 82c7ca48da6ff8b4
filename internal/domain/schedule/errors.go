package schedule

import "errors"

var ErrEntryNotFound = errors.New("schedule entry not found")
