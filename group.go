package drplot

import (
	"fmt"
	"strings"
)

// A GroupLevel is one (categorical column, value) pair of a group
// identity.
type GroupLevel struct {
	Column string
	Value  string
}

// A GroupKey identifies one data subgroup within a plot call as an
// ordered tuple of (column, value) pairs. Equality is structural; the
// canonical form returned by Key is used to cache cycle assignments
// and as part of legend deduplication.
type GroupKey []GroupLevel

// GroupBy builds a GroupKey from alternating column, value arguments:
// GroupBy("Group", "A", "Origin", "EU"). It panics on an odd number of
// arguments, which is a programming error at the call site.
func GroupBy(pairs ...string) GroupKey {
	if len(pairs)%2 != 0 {
		panic("drplot: GroupBy needs alternating column, value pairs")
	}
	gk := make(GroupKey, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		gk = append(gk, GroupLevel{Column: pairs[i], Value: pairs[i+1]})
	}
	return gk
}

// Key returns the canonical form of gk, suitable as a map key.
func (gk GroupKey) Key() string {
	parts := make([]string, len(gk))
	for i, l := range gk {
		parts[i] = l.Column + "\x1f" + l.Value
	}
	return strings.Join(parts, "\x1e")
}

// Equal reports structural equality of gk and other.
func (gk GroupKey) Equal(other GroupKey) bool {
	if len(gk) != len(other) {
		return false
	}
	for i, l := range gk {
		if other[i] != l {
			return false
		}
	}
	return true
}

func (gk GroupKey) String() string {
	parts := make([]string, len(gk))
	for i, l := range gk {
		parts[i] = l.Column + "=" + l.Value
	}
	return strings.Join(parts, ", ")
}

// ColumnSource is the view of the external tabular data provider the
// engine needs: column-name to value lookup, nothing else. The storage
// format behind it is none of this package's business.
type ColumnSource interface {
	// Value returns the value of the named column in the given row.
	// The second return value reports whether the column exists.
	Value(column string, row int) (string, bool)
}

// GroupKeyOf derives the group identity of one data row from the given
// categorical columns, in the order they are listed.
func GroupKeyOf(src ColumnSource, row int, columns ...string) (GroupKey, error) {
	gk := make(GroupKey, 0, len(columns))
	for _, col := range columns {
		v, ok := src.Value(col, row)
		if !ok {
			return nil, fmt.Errorf("drplot: no column %q in data", col)
		}
		gk = append(gk, GroupLevel{Column: col, Value: v})
	}
	return gk, nil
}
