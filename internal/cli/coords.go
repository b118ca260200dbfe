package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"osmbox/internal/config"
	"osmbox/internal/geom"
)

func formatFlagCoordinate(c geom.Coordinate) string {
	return fmt.Sprintf("%g,%g", c.Latitude, c.Longitude)
}

// coordinateValue is a pflag.Value for a single coordinate flag.
type coordinateValue struct {
	value   geom.Coordinate
	set     bool
	presets config.Presets
}

var _ pflag.Value = (*coordinateValue)(nil)

func (v *coordinateValue) String() string {
	if !v.set {
		return ""
	}
	return formatFlagCoordinate(v.value)
}

func (v *coordinateValue) Set(raw string) error {
	c, err := v.presets.Resolve(raw)
	if err != nil {
		return err
	}
	v.value, v.set = c, true
	return nil
}

func (v *coordinateValue) Type() string { return "lat,lon" }

// coordinateListValue collects a repeatable coordinate flag.
type coordinateListValue struct {
	values  []geom.Coordinate
	presets config.Presets
}

var _ pflag.Value = (*coordinateListValue)(nil)

func (v *coordinateListValue) String() string {
	parts := make([]string, 0, len(v.values))
	for _, c := range v.values {
		parts = append(parts, formatFlagCoordinate(c))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (v *coordinateListValue) Set(raw string) error {
	c, err := v.presets.Resolve(raw)
	if err != nil {
		return err
	}
	v.values = append(v.values, c)
	return nil
}

func (v *coordinateListValue) Type() string { return "lat,lon" }
