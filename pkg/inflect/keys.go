package inflect

import (
	"github.com/pkg/errors"
)

// InflectKeys renames the keys of the maps in a decoded document with the
// named format. Without recursive only the keys of v itself are renamed.
// Lists are walked through, so a list of objects renames every element.
//
// Keys colliding after the rename keep the value of the last key in
// ascending order of the original keys.
func (c *Converter) InflectKeys(format string, v any, recursive bool) (any, error) {
	fn, err := c.Transformer(format)
	if err != nil {
		return nil, err
	}
	return inflectKeys(fn, v, recursive, true)
}

func inflectKeys(fn Transform, v any, recursive bool, top bool) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		if !top && !recursive {
			return x, nil
		}

		out := make(map[string]any, len(x))
		for _, k := range sortedKeys(x) {
			value, err := inflectKeys(fn, x[k], recursive, false)
			if err != nil {
				return nil, errors.Wrapf(err, "at key %q", k)
			}
			out[fn(k)] = value
		}
		return out, nil
	case []any:
		out := make([]any, len(x))
		for i := range x {
			value, err := inflectKeys(fn, x[i], recursive, top)
			if err != nil {
				return nil, errors.Wrapf(err, "at index %d", i)
			}
			out[i] = value
		}
		return out, nil
	case map[any]any:
		return nil, errors.Errorf("unsupported map key type %T", x)
	default:
		return v, nil
	}
}
