package anki

// Query is anything that renders to Anki's search syntax.
type Query interface {
	String() string
}

// RawQuery passes a search string through unchanged.
type RawQuery string

func (q RawQuery) String() string {
	return string(q)
}

// CardState is a card-state search term.
// See https://docs.ankiweb.net/searching.html#card-state
type CardState string

const (
	IsDue       CardState = "is:due"
	IsNew       CardState = "is:new"
	IsLearn     CardState = "is:learn"
	IsReview    CardState = "is:review"
	IsSuspended CardState = "is:suspended"
)

func (s CardState) String() string {
	return string(s)
}
