package chess

import "strconv"

// Dot is a grid vertex, numbered row-major from the top-left corner.
type Dot int

func (d Dot) String() string {
	return strconv.Itoa(int(d))
}
