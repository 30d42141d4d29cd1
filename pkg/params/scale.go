package params

import (
	"strings"

	"github.com/willbeason/mandelbrot/pkg/colorscale"
)

// ScaleKind is the name of a colour scale. *ScaleKind is a flag value that
// only accepts known names.
type ScaleKind string

func (k *ScaleKind) String() string { return string(*k) }
func (k *ScaleKind) Type() string   { return "scale" }

func (k *ScaleKind) Set(s string) error {
	if _, err := colorscale.ByName(s); err != nil {
		return err
	}
	*k = ScaleKind(strings.ToLower(s))
	return nil
}
