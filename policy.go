package pixbuf

// Policy selects how a Bitmap validates pixel access.
type Policy uint8

const (
	// Checked validates every coordinate and notifies pixel-change
	// listeners after each successful write.
	Checked Policy = iota

	// Unchecked skips validation and notifications.
	Unchecked
)

func (p Policy) valid() bool {
	return p == Checked || p == Unchecked
}

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Checked:
		return "checked"
	case Unchecked:
		return "unchecked"
	default:
		return "unknown"
	}
}
