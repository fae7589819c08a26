package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeVector denotes "x,y" parameters.
	ParamTypeVector ParamType = "vector"
)

// Parameter describes a single value exposed by a simulation.
type Parameter struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Type  ParamType `json:"type"`
	Value string    `json:"value"`
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string      `json:"name"`
	Params []Parameter `json:"params"`
}

// ParameterSnapshot captures the current configuration and state of a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup `json:"groups"`
}

// ParameterProvider is implemented by sims that can describe themselves.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Lookup returns the parameter stored under key, if any.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// IntParam builds an integer parameter.
func IntParam(key, label string, v int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

// FloatParam builds a floating-point parameter.
func FloatParam(key, label string, v float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}

// VectorParam builds an "x,y" parameter.
func VectorParam(key, label string, v Vector) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeVector,
		Value: strconv.FormatInt(v.X, 10) + "," + strconv.FormatInt(v.Y, 10),
	}
}
