package calc

import (
	"encoding/json"
	"math"
	"strconv"
)

// Value is a named number. Non-finite values encode to JSON as the strings
// "NaN", "Infinity" and "-Infinity".
type Value struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

type jsonValue struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

func (v Value) MarshalJSON() ([]byte, error) {
	var raw []byte
	switch {
	case math.IsNaN(v.Value):
		raw = []byte(`"NaN"`)
	case math.IsInf(v.Value, 1):
		raw = []byte(`"Infinity"`)
	case math.IsInf(v.Value, -1):
		raw = []byte(`"-Infinity"`)
	default:
		raw = strconv.AppendFloat(nil, v.Value, 'g', -1, 64)
	}
	return json.Marshal(jsonValue{Name: v.Name, Value: raw})
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var jv jsonValue
	if err := json.Unmarshal(data, &jv); err != nil {
		return err
	}
	v.Name = jv.Name

	var s string
	if err := json.Unmarshal(jv.Value, &s); err == nil {
		switch s {
		case "NaN":
			v.Value = math.NaN()
		case "Infinity":
			v.Value = math.Inf(1)
		case "-Infinity":
			v.Value = math.Inf(-1)
		default:
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return err
			}
			v.Value = f
		}
		return nil
	}
	return json.Unmarshal(jv.Value, &v.Value)
}

// Result is the outcome of one calculation. Inputs and Outputs keep the
// order declared by the calculation.
type Result struct {
	Calculation string  `json:"calculation" yaml:"calculation"`
	Inputs      []Value `json:"inputs" yaml:"inputs"`
	Outputs     []Value `json:"outputs" yaml:"outputs"`
	Equation    string  `json:"equation,omitempty" yaml:"equation,omitempty"`
}

func (r *Result) Input(name string) (float64, bool) {
	return lookup(r.Inputs, name)
}

func (r *Result) Output(name string) (float64, bool) {
	return lookup(r.Outputs, name)
}

func lookup(vals []Value, name string) (float64, bool) {
	for _, v := range vals {
		if v.Name == name {
			return v.Value, true
		}
	}
	return 0, false
}

// Options controls evaluation. With Strict set, inputs that would yield
// NaN or Inf are rejected with a vecmath domain error.
type Options struct {
	Strict bool
}
