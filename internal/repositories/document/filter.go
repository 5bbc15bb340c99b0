package document

import (
	"cmp"
	"reflect"
	"strings"
	"time"

	"github.com/KirkDiggler/agendabot/internal/models"
)

// record is a document with its fields decoded for filtering
type record struct {
	doc    *models.Document
	fields map[string]any
}

func (r *record) value(field string) (any, bool) {
	switch field {
	case FieldID:
		return r.doc.ID, true
	case FieldCreatedAt:
		return formatTime(r.doc.CreatedAt), true
	case FieldUpdatedAt:
		return formatTime(r.doc.UpdatedAt), true
	}
	v, ok := r.fields[field]
	return v, ok
}

func (r *record) matches(f Filter) bool {
	switch f.Op {
	case OpOr:
		for _, alt := range f.Any {
			if r.matches(alt) {
				return true
			}
		}
		return false
	case OpAnd:
		for _, part := range f.Any {
			if !r.matches(part) {
				return false
			}
		}
		return true
	case OpIsNull:
		v, ok := r.value(f.Field)
		return !ok || v == nil
	case OpIsNotNull:
		v, ok := r.value(f.Field)
		return ok && v != nil
	}

	v, ok := r.value(f.Field)
	if !ok || v == nil {
		return false
	}
	want := normalize(f.Value)

	switch f.Op {
	case OpEqual:
		return equalValues(v, want)
	case OpGreaterThan:
		c, ok := compareValues(v, want)
		return ok && c > 0
	case OpLessThan:
		c, ok := compareValues(v, want)
		return ok && c < 0
	case OpContains:
		items, ok := v.([]any)
		if !ok {
			return false
		}
		for _, item := range items {
			if equalValues(item, want) {
				return true
			}
		}
		return false
	}
	return false
}

// normalize brings a Go filter value into the shape encoding/json decodes to
func normalize(v any) any {
	if v == nil {
		return nil
	}
	if t, ok := v.(time.Time); ok {
		return formatTime(t)
	}
	if t, ok := v.(*time.Time); ok {
		if t == nil {
			return nil
		}
		return formatTime(*t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	}
	return v
}

func equalValues(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return false
		}
		if at, bt, ok := parseTimes(av, bv); ok {
			return at.Equal(bt)
		}
		return av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	}
	return false
}

// compareValues orders numbers numerically, RFC3339 timestamps chronologically,
// and other strings lexically. ok is false for mixed or unordered kinds.
func compareValues(a, b any) (int, bool) {
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		if !ok {
			return 0, false
		}
		return cmp.Compare(av, bv), true
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		if at, bt, ok := parseTimes(av, bv); ok {
			return at.Compare(bt), true
		}
		return strings.Compare(av, bv), true
	}
	return 0, false
}

func parseTimes(a, b string) (time.Time, time.Time, bool) {
	at, err := time.Parse(time.RFC3339Nano, a)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	bt, err := time.Parse(time.RFC3339Nano, b)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return at, bt, true
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// compareRecords applies orders in turn; missing values sort first ascending
func compareRecords(a, b *record, orders []Order) int {
	for _, o := range orders {
		av, aok := a.value(o.Field)
		bv, bok := b.value(o.Field)
		aok = aok && av != nil
		bok = bok && bv != nil

		var c int
		switch {
		case !aok && !bok:
			c = 0
		case !aok:
			c = -1
		case !bok:
			c = 1
		default:
			c, _ = compareValues(av, bv)
		}

		if o.Descending {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}
