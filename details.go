package advisor

// Detail is one supporting figure of a ScoredAction. Value is either a
// float64 or a string.
type Detail struct {
	Key   string
	Value any
}

// Details is an ordered set of supporting figures, serialized as a JSON object
// that preserves the order.
type Details []Detail

func num(key string, v float64) Detail { return Detail{Key: key, Value: v} }
func text(key string, v string) Detail { return Detail{Key: key, Value: v} }

// Get returns the value for key.
func (d Details) Get(key string) (any, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Number returns the numeric value for key, false if absent or not a number.
func (d Details) Number(key string) (float64, bool) {
	v, ok := d.Get(key)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

func (d Details) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, e := range d {
		w.Append(e.Key, e.Value)
	}
	return w.MarshalJSON()
}

func (d *Details) UnmarshalJSON(data []byte) error {
	var res Details
	err := readJSONObject(data, func(key string, value any) {
		res = append(res, Detail{Key: key, Value: value})
	})
	if err != nil {
		return err
	}
	*d = res
	return nil
}
