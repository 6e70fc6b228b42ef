package normalize

import "fmt"

// ReasonMissingOrInvalidAge is the single hard validation failure reason.
// Age is the only required field; every other problem degrades to a nil score.
const ReasonMissingOrInvalidAge = "missing-or-invalid-age"

// RejectedRecordError reports a record that cannot yield a profile.
// Batch callers should skip the row and continue rather than aborting.
type RejectedRecordError struct {
	Reason string
}

func (e *RejectedRecordError) Error() string {
	return fmt.Sprintf("record rejected: %s", e.Reason)
}
