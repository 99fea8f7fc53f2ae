package audit

import "errors"

// ErrEventValidation indicates an event missing required fields.
var ErrEventValidation = errors.New("audit.event_validation")
