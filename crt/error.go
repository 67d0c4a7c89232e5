package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// InvalidCapacity - Custom error to inform that a table can't be created with the requested capacity
type InvalidCapacity struct {
	msg string
}

// NewInvalidCapacity - Returns an InvalidCapacity with a specific message
func NewInvalidCapacity(msg string) InvalidCapacity {
	return InvalidCapacity{msg: msg}
}

// Error - Used to notify that capacity is invalid
func (E InvalidCapacity) Error() string {
	if E.msg == "" {
		return "capacity must be a positive value higher than 0 (zero)"
	}
	return E.msg
}

// Is - Matches any InvalidCapacity regardless of message
func (E InvalidCapacity) Is(target error) bool {
	_, ok := target.(InvalidCapacity)
	return ok
}

// BucketOutOfRange - Custom error to inform that a bucket number is outside the table
type BucketOutOfRange struct {
	msg string
}

// NewBucketOutOfRange - Returns a BucketOutOfRange with a specific message
func NewBucketOutOfRange(msg string) BucketOutOfRange {
	return BucketOutOfRange{msg: msg}
}

// Error - Used to notify that a bucket number is out of range
func (B BucketOutOfRange) Error() string {
	if B.msg == "" {
		return "bucket number out of range"
	}
	return B.msg
}

// Is - Matches any BucketOutOfRange regardless of message
func (B BucketOutOfRange) Is(target error) bool {
	_, ok := target.(BucketOutOfRange)
	return ok
}
