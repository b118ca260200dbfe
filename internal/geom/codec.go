package geom

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// rectWire is the serialized form of a Rect. Decoding goes back through
// NewRect so swapped corners in the input are normalized.
type rectWire struct {
	Min Coordinate `json:"min" yaml:"min"`
	Max Coordinate `json:"max" yaml:"max"`
}

func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal(rectWire{Min: r.min, Max: r.max})
}

func (r *Rect) UnmarshalJSON(data []byte) error {
	var w rectWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decode rect: %w", err)
	}
	*r = NewRect(w.Min, w.Max)
	return nil
}

func (r Rect) MarshalYAML() (any, error) {
	return rectWire{Min: r.min, Max: r.max}, nil
}

func (r *Rect) UnmarshalYAML(value *yaml.Node) error {
	var w rectWire
	if err := value.Decode(&w); err != nil {
		return fmt.Errorf("decode rect: %w", err)
	}
	*r = NewRect(w.Min, w.Max)
	return nil
}
