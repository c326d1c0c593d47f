package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// MovementType represents the direction of a stock movement.
type MovementType int

const (
	MovementIn  MovementType = 0
	MovementOut MovementType = 1
)

var movementTypeNames = [...]string{"in", "out"}

func (t MovementType) String() string {
	if t < MovementIn || t > MovementOut {
		return "Unknown"
	}
	return movementTypeNames[t]
}

// Valid reports whether the movement type is a known value.
func (t MovementType) Valid() bool {
	return t >= MovementIn && t <= MovementOut
}

func (t MovementType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *MovementType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = MovementType(i)
		return nil
	}
	switch str {
	case "in":
		*t = MovementIn
	case "out":
		*t = MovementOut
	}
	return nil
}

func (t MovementType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *MovementType) Scan(value interface{}) error {
	if value == nil {
		*t = MovementIn
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = MovementType(v)
	case int:
		*t = MovementType(v)
	}
	return nil
}
