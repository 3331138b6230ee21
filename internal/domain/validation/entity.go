package validation

// Pending is content awaiting validation. Nothing writes these yet, so the
// shape is left opaque and only the number of entries is observable.
type Pending struct {
	ID      string
	Payload any
}
