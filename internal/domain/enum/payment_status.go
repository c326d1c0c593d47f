package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentStatus represents whether an order is fully paid. The status only
// moves from Belum Lunas to Lunas; there is no automatic reverse transition.
type PaymentStatus int

const (
	PaymentBelumLunas PaymentStatus = 0
	PaymentLunas      PaymentStatus = 1
)

var paymentStatusNames = [...]string{"Belum Lunas", "Lunas"}

func (s PaymentStatus) String() string {
	if s < PaymentBelumLunas || s > PaymentLunas {
		return "Unknown"
	}
	return paymentStatusNames[s]
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	switch str {
	case "Belum Lunas":
		*s = PaymentBelumLunas
	case "Lunas":
		*s = PaymentLunas
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentBelumLunas
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
