package sheets

import (
	"errors"
	"fmt"

	"github.com/JonMunkholm/pfmdash/internal/core"
	"github.com/tidwall/gjson"
)

// errInvalidPayload marks a body that is not a JSON array of row objects.
var errInvalidPayload = errors.New("invalid payload")

// DecodeRows parses an opensheet payload: a JSON array of objects, one per
// row. Column order follows the object's key order in the payload, which
// encoding/json maps would lose.
//
// Cell values are kept as text. null becomes "", numbers and booleans keep
// their literal form. Array elements that are not objects are skipped.
func DecodeRows(body []byte) ([]core.Record, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: malformed JSON", errInvalidPayload)
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected a JSON array, got %s", errInvalidPayload, root.Type)
	}

	elems := root.Array()
	rows := make([]core.Record, 0, len(elems))
	for _, elem := range elems {
		if !elem.IsObject() {
			continue
		}
		rec := core.NewRecord(8)
		elem.ForEach(func(key, value gjson.Result) bool {
			rec.Set(key.String(), cellText(value))
			return true
		})
		rows = append(rows, rec)
	}
	return rows, nil
}

func cellText(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return v.Str
	default:
		// Numbers, booleans and nested values keep their source text.
		return v.Raw
	}
}
