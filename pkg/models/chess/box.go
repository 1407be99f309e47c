package chess

// Box is identified by its upper-left dot.
type Box Dot

const (
	Top = iota
	Left
	Right
	Bottom
)

func (b Box) String() string {
	return Dot(b).String()
}
