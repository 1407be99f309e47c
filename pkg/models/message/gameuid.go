package message

import (
	"fmt"

	"github.com/google/uuid"
)

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

// ParseGameUid accepts only ids minted by NewGameUid.
func ParseGameUid(s string) (GameUid, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("game uid %q: %w", s, err)
	}
	return GameUid(id.String()), nil
}

func (g GameUid) String() string {
	return string(g)
}
