package domain

// Status is the outcome reported to clients for registration, verification and admin writes.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusRepeat    Status = "repeat"
	StatusFull      Status = "full"
	StatusUnchanged Status = "unchanged"
	StatusDenied    Status = "denied"
)

// WriteResult maps an update outcome to a Status: changed rows are succeeded, a matched
// row with identical values is unchanged.
func WriteResult(changed bool) Status {
	if changed {
		return StatusSucceeded
	}
	return StatusUnchanged
}
