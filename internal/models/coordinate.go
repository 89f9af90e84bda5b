package models

import (
	"errors"
	"strings"
)

// ErrInvalidCoordinate возвращается для неполной удаленной координаты
var ErrInvalidCoordinate = errors.New("invalid remote coordinate")

// Coordinate адрес удаленного объекта: владелец, ветка, id объекта.
type Coordinate struct {
	Owner    string `json:"owner"`
	Branch   string `json:"branch"`
	ObjectID string `json:"object_id"`
}

// Key returns owner/branch/objectId.
func (c Coordinate) Key() string {
	return c.Owner + "/" + c.Branch + "/" + c.ObjectID
}

// Validate checks that owner and branch are set.
// ObjectID может быть пустым для операций над веткой целиком (createBranch).
func (c Coordinate) Validate() error {
	if c.Owner == "" || c.Branch == "" {
		return ErrInvalidCoordinate
	}
	return nil
}

// ParseCoordinate parses a key produced by Coordinate.Key.
func ParseCoordinate(key string) (Coordinate, error) {
	parts := strings.SplitN(key, "/", 3)
	if len(parts) != 3 {
		return Coordinate{}, ErrInvalidCoordinate
	}
	c := Coordinate{Owner: parts[0], Branch: parts[1], ObjectID: parts[2]}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}
