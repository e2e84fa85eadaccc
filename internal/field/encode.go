package field

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Timeline is the edit-UI value for a timeline field.
type Timeline struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Location is the edit-UI value for a location field.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Encode builds the JSON write payload the host mutation expects for
// the given type, inverse to Decode's extraction. Each encoder accepts
// both the primitive convenience form ("Done") and the full payload
// shape ({"label": "Done"}). Malformed primitive inputs degrade to a
// type default instead of failing; only types without a write path
// return an error.
func Encode(t Type, v any) (string, error) {
	s := specFor(t)
	if s.encode == nil {
		return "", fmt.Errorf("field: type %q has no write payload", t)
	}
	return s.encode(v)
}

func marshal(v any) (string, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("field: encode: %w", err)
	}
	return string(out), nil
}

// fromMap unwraps the canonical payload key when the caller supplied
// the full payload shape instead of the primitive.
func fromMap(v any, key string) (any, bool) {
	if m, ok := v.(map[string]any); ok {
		if val, ok := m[key]; ok {
			return val, true
		}
	}
	return nil, false
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func asList(v any) []any {
	switch list := v.(type) {
	case []any:
		return list
	case []string:
		out := make([]any, len(list))
		for i, s := range list {
			out[i] = s
		}
		return out
	case nil:
		return nil
	default:
		return []any{v}
	}
}

func encodeString(v any) (string, error) {
	if val, ok := fromMap(v, "text"); ok {
		v = val
	}
	return marshal(asString(v))
}

func encodeLongText(v any) (string, error) {
	if val, ok := fromMap(v, "text"); ok {
		v = val
	}
	return marshal(map[string]any{"text": asString(v)})
}

func encodeStatus(v any) (string, error) {
	if val, ok := fromMap(v, "label"); ok {
		v = val
	}
	return marshal(map[string]any{"label": asString(v)})
}

func encodeDate(v any) (string, error) {
	if val, ok := fromMap(v, "date"); ok {
		v = val
	}
	return marshal(map[string]any{"date": asString(v)})
}

// encodeNumbers writes the number in string form, which is what the
// host mutation contract expects for numeric columns.
func encodeNumbers(v any) (string, error) {
	return marshal(asString(v))
}

func encodeDropdown(v any) (string, error) {
	if val, ok := fromMap(v, "labels"); ok {
		v = val
	}
	labels := asList(v)
	if labels == nil {
		labels = []any{}
	}
	return marshal(map[string]any{"labels": labels})
}

func encodePeople(v any) (string, error) {
	if val, ok := fromMap(v, "personsAndTeams"); ok {
		v = val
	}
	var persons []map[string]any
	for _, entry := range asList(v) {
		id := entry
		kind := "person"
		if m, ok := entry.(map[string]any); ok {
			id = m["id"]
			if k := asString(m["kind"]); k != "" {
				kind = k
			}
		}
		persons = append(persons, map[string]any{"id": id, "kind": kind})
	}
	if persons == nil {
		persons = []map[string]any{}
	}
	return marshal(map[string]any{"personsAndTeams": persons})
}

func encodeTimeline(v any) (string, error) {
	var from, to string
	switch tv := v.(type) {
	case Timeline:
		from, to = tv.From, tv.To
	case *Timeline:
		from, to = tv.From, tv.To
	case map[string]any:
		from = asString(tv["from"])
		to = asString(tv["to"])
	}
	return marshal(map[string]any{"from": from, "to": to})
}

func encodeTags(v any) (string, error) {
	if val, ok := fromMap(v, "tag_ids"); ok {
		v = val
	}
	ids := asList(v)
	if ids == nil {
		ids = []any{}
	}
	return marshal(map[string]any{"tag_ids": ids})
}

func encodeCheckbox(v any) (string, error) {
	if val, ok := fromMap(v, "checked"); ok {
		v = val
	}
	checked := false
	switch cv := v.(type) {
	case bool:
		checked = cv
	case string:
		checked = cv == "true" || cv == "Yes"
	}
	return marshal(map[string]any{"checked": checked})
}

// encodeRating degrades an unparseable rating to 0 rather than
// failing. Out-of-range values pass through unclamped; see the rating
// decode path for the matching read-side looseness.
func encodeRating(v any) (string, error) {
	if val, ok := fromMap(v, "rating"); ok {
		v = val
	}
	rating := 0
	switch rv := v.(type) {
	case int:
		rating = rv
	case float64:
		rating = int(rv)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(rv)); err == nil {
			rating = n
		}
	}
	return marshal(map[string]any{"rating": rating})
}

func encodeColor(v any) (string, error) {
	if val, ok := fromMap(v, "color"); ok {
		v = val
	}
	return marshal(map[string]any{"color": asString(v)})
}

func encodeEmail(v any) (string, error) {
	text := ""
	if val, ok := fromMap(v, "text"); ok {
		text = asString(val)
	}
	if val, ok := fromMap(v, "email"); ok {
		v = val
	}
	s := asString(v)
	if text == "" {
		text = s
	}
	return marshal(map[string]any{"email": s, "text": text})
}

func encodePhone(v any) (string, error) {
	if val, ok := fromMap(v, "phone"); ok {
		v = val
	}
	return marshal(map[string]any{"phone": asString(v), "countryShortName": ""})
}

func encodeLink(v any) (string, error) {
	text := ""
	if val, ok := fromMap(v, "text"); ok {
		text = asString(val)
	}
	if val, ok := fromMap(v, "url"); ok {
		v = val
	}
	s := asString(v)
	if text == "" {
		text = s
	}
	return marshal(map[string]any{"url": s, "text": text})
}

func encodeLocation(v any) (string, error) {
	var loc Location
	switch lv := v.(type) {
	case Location:
		loc = lv
	case *Location:
		loc = *lv
	case map[string]any:
		lat, _ := lv["lat"].(float64)
		lng, _ := lv["lng"].(float64)
		loc = Location{Lat: lat, Lng: lng, Address: asString(lv["address"])}
	}
	return marshal(map[string]any{"lat": loc.Lat, "lng": loc.Lng, "address": loc.Address})
}

func encodeCountry(v any) (string, error) {
	if m, ok := v.(map[string]any); ok {
		return marshal(map[string]any{
			"countryCode": asString(m["countryCode"]),
			"countryName": asString(m["countryName"]),
		})
	}
	return marshal(map[string]any{"countryName": asString(v)})
}

func encodePassthrough(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return marshal(v)
}
