package metrics

import (
	"encoding/json"
	"math"
	"strconv"
)

// Percent is a rate that is undefined ("N/A") when its denominator is zero.
type Percent struct {
	Value float64
	Valid bool
}

func percentOf(part, whole float64) Percent {
	if whole <= 0 {
		return Percent{}
	}
	return Percent{Value: part / whole * 100, Valid: true}
}

// Rounded is the value at one decimal, as displayed.
func (p Percent) Rounded() float64 {
	return math.Round(p.Value*10) / 10
}

// Float returns NaN for an undefined percent.
func (p Percent) Float() float64 {
	if !p.Valid {
		return math.NaN()
	}
	return p.Value
}

func (p Percent) String() string {
	if !p.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(p.Rounded(), 'f', 1, 64) + "%"
}

func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte(`"N/A"`), nil
	}
	return json.Marshal(p.Rounded())
}

func (p *Percent) UnmarshalJSON(b []byte) error {
	if string(b) == `"N/A"` || string(b) == "null" {
		*p = Percent{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Percent{Value: v, Valid: true}
	return nil
}
