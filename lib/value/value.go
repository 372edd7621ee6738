package value

import "strconv"

// Int is the only value domain of the language. Relational operators
// encode their result as Int(1) or Int(0); conditionals treat any
// nonzero value as true.
type Int int64

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// Truthy reports whether a conditional treats i as true.
func (i Int) Truthy() bool {
	return i != 0
}
