package api

import (
	"encoding/json"

	"studywise-client/internal/pkg/logger"

	"github.com/tidwall/gjson"
)

// Shape is how a listing endpoint chose to envelope its array.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeArray         // [...]
	ShapeWrapped       // {"<field>": [...]}
)

func (s Shape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapeWrapped:
		return "wrapped"
	}
	return "unknown"
}

// Envelope is a normalized listing. Items is never nil.
type Envelope[T any] struct {
	Shape Shape
	Items []T
}

// Wrapper field of each listing response.
const (
	FieldUploads   = "uploads"
	FieldTopics    = "topics"
	FieldHistory   = "history"
	FieldNotes     = "notes"
	FieldTimetable = "classes"
	FieldPlans     = "plans"
)

// Normalize accepts either a bare array or an object holding the array under
// field. Anything else yields an empty ShapeUnknown envelope and a warning.
// Elements that do not decode into T are skipped with a warning each; the
// rest keep their order. It never fails.
func Normalize[T any](raw []byte, field string, log logger.ILogger) Envelope[T] {
	if log == nil {
		log = logger.NewNopLogger()
	}

	res := gjson.ParseBytes(raw)
	shape := ShapeUnknown
	switch {
	case res.IsArray():
		shape = ShapeArray
	case res.IsObject():
		if inner := res.Get(gjson.Escape(field)); inner.IsArray() {
			shape = ShapeWrapped
			res = inner
		}
	}

	if shape == ShapeUnknown {
		log.Warn("api", "unexpected response shape, using empty list", map[string]interface{}{
			"field": field,
			"body":  truncate(string(raw), 200),
		})
		return Envelope[T]{Shape: ShapeUnknown, Items: []T{}}
	}

	items := []T{}
	index := 0
	res.ForEach(func(_, elem gjson.Result) bool {
		var item T
		if err := json.Unmarshal([]byte(elem.Raw), &item); err != nil {
			log.Warn("api", "skipping list item that does not decode", map[string]interface{}{
				"field": field,
				"shape": shape.String(),
				"index": index,
				"item":  truncate(elem.Raw, 200),
				"error": err.Error(),
			})
		} else {
			items = append(items, item)
		}
		index++
		return true
	})
	return Envelope[T]{Shape: shape, Items: items}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
