package production

import "errors"

// Production domain errors
var ErrEntryNotFound = errors.New("production entry not found")
