package domain

import "fmt"

const (
	UnknownHomeType = "inconnu"
	UnknownRoom     = "non renseignée"
	UnknownFloor    = "non renseigné"
)

// Household describes the dwelling the measurements were taken in.
type Household struct {
	Type  string
	Room  string
	Floor string
}

// DefaultHousehold returns a household made of placeholders only.
func DefaultHousehold() Household {
	return Household{
		Type:  UnknownHomeType,
		Room:  UnknownRoom,
		Floor: UnknownFloor,
	}
}

func (h Household) String() string {
	return fmt.Sprintf("%s:%s:%s", h.Type, h.Room, h.Floor)
}
