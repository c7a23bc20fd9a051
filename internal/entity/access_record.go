package entity

// AccessRecord is a single entry of the per-code access log.
// Both fields are opaque to the storage layer; the caller decides their format.
type AccessRecord struct {
	Timestamp string // Timestamp is the moment the short code was resolved.
	Address   string // Address is the origin address of the resolving request.
}

// String renders the record as "<timestamp> <address>".
func (r AccessRecord) String() string {
	return r.Timestamp + " " + r.Address
}
