package chess

type Turn int8

const (
	NoPlayer Turn = 0
	Player1  Turn = 1
	Player2  Turn = -1
)

func (t Turn) String() string {
	switch t {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return ""
}

// Name is the board letter of the player.
func (t Turn) Name() string {
	switch t {
	case Player1:
		return "A"
	case Player2:
		return "B"
	}
	return " "
}

func (t Turn) Next() Turn {
	return -t
}
