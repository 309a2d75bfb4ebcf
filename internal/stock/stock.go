package stock

// Status is the derived stock classification of an inventory item.
type Status uint8

const (
	Good Status = iota
	Low
	Critical
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case Critical:
		return "Critical"
	case Low:
		return "Low"
	default:
		return "Good"
	}
}

// Classify maps a quantity and low-stock threshold to a Status.
//
// Critical and Low are mutually exclusive: a zero quantity is always
// Critical even though it also satisfies quantity <= threshold. The stats
// queries use the same split.
func Classify(quantity, threshold int) Status {
	switch {
	case quantity <= 0:
		return Critical
	case quantity <= threshold:
		return Low
	default:
		return Good
	}
}
