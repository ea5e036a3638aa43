package store

import "time"

// Field accessors for Document data. Firestore hands back loosely typed
// values (strings, []interface{}, time.Time); these keep the decoding in
// one place and tolerate absent or mistyped fields by returning zero
// values rather than panicking.

func (d Document) String(key string) string {
	v, _ := d.Data[key].(string)
	return v
}

func (d Document) Bool(key string) bool {
	v, _ := d.Data[key].(bool)
	return v
}

func (d Document) Time(key string) time.Time {
	v, _ := d.Data[key].(time.Time)
	return v
}

func (d Document) StringSlice(key string) []string {
	raw, ok := d.Data[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
