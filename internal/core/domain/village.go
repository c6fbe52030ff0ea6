package domain

import (
	"errors"
	"time"
)

var ErrOwnerNotFound = errors.New("village owner does not exist")

// startingPopulation is the number of villagers a freshly settled village holds.
const startingPopulation = 2

// Village is a player-owned settlement on the game map.
type Village struct {
	ID         int64     `json:"id"`
	OwnerID    int64     `json:"owner_id"`
	Name       string    `json:"name"`
	X          int       `json:"x"`
	Y          int       `json:"y"`
	Population int       `json:"population"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewVillage returns a village at (x, y) ready to be persisted for ownerID.
func NewVillage(ownerID int64, name string, x, y int) *Village {
	return &Village{
		OwnerID:    ownerID,
		Name:       name,
		X:          x,
		Y:          y,
		Population: startingPopulation,
	}
}
