package interp

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// EncodeSnapshot renders a Snapshot as a JSON document, one object per
// visible binding, giving the debugger hook contract a concrete wire
// format an out-of-process driver can consume without a Go struct. Built
// incrementally with sjson rather than encoding/json so a driver-side
// partial read (via QuerySnapshot) never needs the whole document decoded.
func EncodeSnapshot(snap Snapshot) (string, error) {
	doc := "[]"
	var err error
	for i, b := range snap {
		idx := strconv.Itoa(i)
		path := func(field string) string { return idx + "." + field }
		if doc, err = sjson.Set(doc, path("name"), b.Name); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, path("type"), b.Type.String()); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, path("value"), b.Value.String()); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, path("scope"), b.Scope); err != nil {
			return "", err
		}
	}
	return doc, nil
}

// QuerySnapshot looks up one dotted gjson path (e.g. "1.value") in an
// encoded snapshot document, for a caller that wants a single binding
// without decoding the whole array.
func QuerySnapshot(encoded, path string) string {
	return gjson.Get(encoded, path).String()
}
