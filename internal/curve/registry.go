package curve

import (
	"fmt"
	"sort"
)

type Registry struct {
	curves map[string]func() Curve
}

func NewRegistry() *Registry {
	r := &Registry{curves: make(map[string]func() Curve)}

	r.curves["spiral"] = func() Curve { return NewSpiral() }
	r.curves["circle"] = func() Curve { return NewCircle() }
	r.curves["lissajous"] = func() Curve { return NewLissajous() }
	r.curves["rose"] = func() Curve { return NewRose() }

	return r
}

func (r *Registry) Register(name string, fn func() Curve) {
	r.curves[name] = fn
}

// Get builds a fresh curve and applies params to it. Params are only
// accepted by curves implementing Configurable.
func (r *Registry) Get(name string, params map[string]float64) (Curve, error) {
	fn, ok := r.curves[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurve, name)
	}
	c := fn()
	if len(params) == 0 {
		return c, nil
	}
	cfg, ok := c.(Configurable)
	if !ok {
		return nil, fmt.Errorf("%w: %s takes no parameters", ErrUnknownParam, name)
	}
	for k, v := range params {
		if err := cfg.SetParam(k, v); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.curves))
	for name := range r.curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
