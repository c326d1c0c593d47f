package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CustomerLevel represents the pricing tier of a customer. The level
// selects which price column of a material applies to that customer.
type CustomerLevel int

const (
	LevelEndCustomer CustomerLevel = 0
	LevelRetail      CustomerLevel = 1
	LevelGrosir      CustomerLevel = 2
	LevelReseller    CustomerLevel = 3
	LevelCorporate   CustomerLevel = 4
)

var customerLevelNames = [...]string{"End Customer", "Retail", "Grosir", "Reseller", "Corporate"}

func (l CustomerLevel) String() string {
	if l < LevelEndCustomer || l > LevelCorporate {
		return "Unknown"
	}
	return customerLevelNames[l]
}

// Valid reports whether the level is one of the five known tiers.
func (l CustomerLevel) Valid() bool {
	return l >= LevelEndCustomer && l <= LevelCorporate
}

func (l CustomerLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *CustomerLevel) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*l = CustomerLevel(i)
		return nil
	}
	for i, name := range customerLevelNames {
		if name == str {
			*l = CustomerLevel(i)
			return nil
		}
	}
	return nil
}

func (l CustomerLevel) Value() (driver.Value, error) {
	return int64(l), nil
}

func (l *CustomerLevel) Scan(value interface{}) error {
	if value == nil {
		*l = LevelEndCustomer
		return nil
	}
	switch v := value.(type) {
	case int64:
		*l = CustomerLevel(v)
	case int:
		*l = CustomerLevel(v)
	}
	return nil
}
