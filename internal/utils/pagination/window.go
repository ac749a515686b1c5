package pagination

import "fmt"

// Window is an offset/limit slice of an ordered result set: [Offset, Offset+Limit).
type Window struct {
	Limit  int
	Offset int
}

// NewWindow applies defaults: a nil limit becomes defaultLimit, a nil
// offset becomes 0. Negative values are rejected.
func NewWindow(limit, offset *int, defaultLimit int) (Window, error) {
	w := Window{Limit: defaultLimit}
	if limit != nil {
		if *limit < 0 {
			return Window{}, fmt.Errorf("limit must not be negative")
		}
		w.Limit = *limit
	}
	if offset != nil {
		if *offset < 0 {
			return Window{}, fmt.Errorf("offset must not be negative")
		}
		w.Offset = *offset
	}
	return w, nil
}
