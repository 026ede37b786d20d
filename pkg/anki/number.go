package anki

import "strconv"

// Number is a remote-assigned integer identifier (note IDs, deck IDs).
// AnkiConnect IDs are millisecond timestamps, so a 64-bit signed type is
// required to avoid overflow on 32-bit platforms.
type Number int64

// Int64 returns the identifier as a plain int64.
func (n Number) Int64() int64 {
	return int64(n)
}

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// ParseNumber normalizes a textual identifier into a Number.
func ParseNumber(raw string) (Number, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &InvalidIDError{Raw: raw}
	}
	return Number(id), nil
}

// Numbers converts a slice of plain int64 IDs.
func Numbers(ids []int64) []Number {
	out := make([]Number, len(ids))
	for i, id := range ids {
		out[i] = Number(id)
	}
	return out
}
