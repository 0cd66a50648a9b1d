package field

import "strings"

// ValueKind tells which shape a Value carries.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindSingle
	KindPair
)

// Value is the model a Field exchanges with its host: nothing, one date
// string, or a start/end pair.
type Value struct {
	Kind  ValueKind `json:"kind"`
	Date  string    `json:"date,omitempty"`
	Range [2]string `json:"range,omitempty"`
}

// Null returns the empty model.
func Null() Value {
	return Value{}
}

// Single wraps one date string.
func Single(date string) Value {
	return Value{Kind: KindSingle, Date: date}
}

// Pair wraps a start/end pair.
func Pair(start, end string) Value {
	return Value{Kind: KindPair, Range: [2]string{start, end}}
}

// IsNull reports whether v carries no date.
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

func (v Value) String() string {
	switch v.Kind {
	case KindSingle:
		return v.Date
	case KindPair:
		return strings.Join(v.Range[:], ", ")
	default:
		return "null"
	}
}
