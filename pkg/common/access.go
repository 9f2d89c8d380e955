package common

// Owned is implemented by every record that only its author may change.
type Owned interface {
	OwnerId() int64
}

// AssertOwner must be called before every mutation of an owned record.
func AssertOwner(rec Owned, actorId int64) error {
	if rec.OwnerId() != actorId {
		return Permission("permission denied")
	}
	return nil
}
