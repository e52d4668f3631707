// Package jsonid decodes backend references that arrive either as a bare id
// string or as a populated document carrying an "_id" field.
package jsonid

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if !gjson.ValidBytes(b) {
		return fmt.Errorf("jsonid: invalid json %q", b)
	}

	res := gjson.ParseBytes(b)
	switch {
	case res.Type == gjson.Null:
		*id = ""
	case res.IsObject():
		*id = ID(res.Get("_id").String())
	case res.Type == gjson.String, res.Type == gjson.Number:
		*id = ID(res.String())
	default:
		return fmt.Errorf("jsonid: unsupported reference %s", res.Raw)
	}
	return nil
}

// MarshalJSON always writes the bare id.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }
