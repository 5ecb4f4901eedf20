package wavelint

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// RenderConfig is a typed view of the well-known keys in a document's
// "config" attribute. The raw Config map remains authoritative; unknown
// keys are simply not represented here.
type RenderConfig struct {
	// HScale stretches the diagram horizontally. Zero means unset.
	HScale int `mapstructure:"hscale"`
	// Skin names the rendering skin (e.g. "default", "narrow").
	Skin string `mapstructure:"skin"`
}

// DecodeConfig decodes the pass-through Config attribute into a
// RenderConfig. Decoding is weakly typed, so a document carrying
// "hscale: 2" (a JSON number, float64 in the map) or even "hscale: '2'"
// yields HScale == 2.
//
// A Config that cannot decode (for example a non-map value smuggled through
// the unvalidated attribute) returns an error; construction of the Project
// itself is never affected.
func (p *Project) DecodeConfig() (RenderConfig, error) {
	var cfg RenderConfig

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return RenderConfig{}, err
	}
	if err := dec.Decode(p.Config); err != nil {
		return RenderConfig{}, fmt.Errorf("decoding config attribute: %w", err)
	}
	return cfg, nil
}
