package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ProductionStatus represents the production lifecycle of an order or of a
// single order item: Pending -> Waiting -> Proses -> Ready.
type ProductionStatus int

const (
	StatusPending ProductionStatus = 0
	StatusWaiting ProductionStatus = 1
	StatusProses  ProductionStatus = 2
	StatusReady   ProductionStatus = 3
)

var productionStatusNames = [...]string{"Pending", "Waiting", "Proses", "Ready"}

func (s ProductionStatus) String() string {
	if s < StatusPending || s > StatusReady {
		return "Unknown"
	}
	return productionStatusNames[s]
}

// Valid reports whether the status is one of the known lifecycle states.
func (s ProductionStatus) Valid() bool {
	return s >= StatusPending && s <= StatusReady
}

func (s ProductionStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ProductionStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ProductionStatus(i)
		return nil
	}
	for i, name := range productionStatusNames {
		if name == str {
			*s = ProductionStatus(i)
			return nil
		}
	}
	return nil
}

func (s ProductionStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ProductionStatus) Scan(value interface{}) error {
	if value == nil {
		*s = StatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ProductionStatus(v)
	case int:
		*s = ProductionStatus(v)
	}
	return nil
}
