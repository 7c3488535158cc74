package bedpesummary

import (
	"encoding/json"
	"math"
)

// Float marshals NaN and the infinities as strings so the report stays valid
// JSON.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) {
		return []byte(`"NaN"`), nil
	}
	if math.IsInf(v, 0) {
		if math.IsInf(v, -1) {
			return []byte(`"-Inf"`), nil
		}
		return []byte(`"Inf"`), nil
	}
	return json.Marshal(v)
}

func (f *Float) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"NaN"`:
		*f = Float(math.NaN())
	case `"Inf"`:
		*f = Float(math.Inf(1))
	case `"-Inf"`:
		*f = Float(math.Inf(-1))
	default:
		var v float64
		if e := json.Unmarshal(b, &v); e != nil {
			return e
		}
		*f = Float(v)
	}
	return nil
}
