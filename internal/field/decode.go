package field

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Empty-state sentinels per type.
const (
	SentinelEmpty    = "—"
	SentinelNoOne    = "No one assigned"
	SentinelNoDate   = "No date"
	SentinelNoRange  = "No timeline"
	SentinelNoTags   = "No tags"
	SentinelNoLink   = "No link"
	SentinelNoEmail  = "No email"
	SentinelNoPhone  = "No phone"
	SentinelUnknown  = "?"
	neutralStatusHex = "#c4c4c4"
	defaultColorHex  = "#cccccc"
)

// Display is the UI-facing decoded representation of one field value.
// Text is always set. The typed extras are populated per type; zero
// values mean "not applicable".
type Display struct {
	Text       string   `json:"text"`
	Empty      bool     `json:"empty,omitempty"`
	Label      string   `json:"label,omitempty"`
	Color      string   `json:"color,omitempty"`
	Foreground string   `json:"foreground,omitempty"`
	People     []string `json:"people,omitempty"`
	From       string   `json:"from,omitempty"`
	To         string   `json:"to,omitempty"`
	Checked    bool     `json:"checked,omitempty"`
	Rating     int      `json:"rating,omitempty"`
	Percentage int      `json:"percentage,omitempty"`
	Labels     []string `json:"labels,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	URL        string   `json:"url,omitempty"`
	Address    string   `json:"address,omitempty"`
}

// Decode maps a raw host payload to its display representation. It
// never fails: a missing or malformed payload falls back to the plain
// text rendering for every type.
func Decode(t Type, rawJSON, text string) Display {
	var parsed map[string]any
	if rawJSON != "" {
		// Tolerant parse. Non-object payloads (bare strings, numbers)
		// leave parsed nil and the type decoder works from text alone.
		_ = json.Unmarshal([]byte(rawJSON), &parsed)
	}
	return specFor(t).decode(parsed, text)
}

func str(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func num(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	if f, ok := m[key].(float64); ok {
		return f, true
	}
	return 0, false
}

func decodeText(_ map[string]any, text string) Display {
	if text == "" {
		return Display{Text: SentinelEmpty, Empty: true}
	}
	return Display{Text: text}
}

func decodeStatus(m map[string]any, text string) Display {
	label := str(m, "label")
	if label == "" {
		label = text
	}
	color := str(m, "color")
	if color == "" {
		color = neutralStatusHex
	}
	d := Display{Label: label, Color: color, Foreground: Contrast(color), Text: label}
	if label == "" {
		d.Text = SentinelEmpty
		d.Empty = true
	}
	return d
}

func decodePeople(m map[string]any, text string) Display {
	var names []string
	if m != nil {
		if list, ok := m["personsAndTeams"].([]any); ok {
			for _, p := range list {
				if pm, ok := p.(map[string]any); ok {
					if name := str(pm, "name"); name != "" {
						names = append(names, name)
					}
				}
			}
		}
	}
	if len(names) == 0 {
		if text != "" {
			return Display{Text: text}
		}
		return Display{Text: SentinelNoOne, Empty: true}
	}
	return Display{People: names, Text: strings.Join(names, ", ")}
}

func decodeDate(m map[string]any, text string) Display {
	raw := str(m, "date")
	if raw == "" {
		raw = text
	}
	if raw == "" {
		return Display{Text: SentinelNoDate, Empty: true}
	}
	return Display{Text: formatDate(raw, "Jan 2, 2006")}
}

// formatDate renders a host date in the fixed panel locale format.
// Unparseable input is shown verbatim rather than dropped.
func formatDate(raw, layout string) string {
	for _, in := range []string{"2006-01-02", time.RFC3339} {
		if ts, err := time.Parse(in, raw); err == nil {
			return ts.Format(layout)
		}
	}
	return raw
}

func decodeTimeline(m map[string]any, text string) Display {
	from := str(m, "from")
	to := str(m, "to")
	if from == "" && to == "" {
		if text != "" {
			return Display{Text: text}
		}
		return Display{Text: SentinelNoRange, Empty: true}
	}
	fromDisp, toDisp := SentinelUnknown, SentinelUnknown
	if from != "" {
		fromDisp = formatDate(from, "Jan 2")
	}
	if to != "" {
		toDisp = formatDate(to, "Jan 2, 2006")
	}
	return Display{From: from, To: to, Text: fromDisp + " → " + toDisp}
}

func decodeTags(m map[string]any, text string) Display {
	var tags []string
	if m != nil {
		if list, ok := m["tag_ids"].([]any); ok {
			for _, t := range list {
				switch v := t.(type) {
				case map[string]any:
					if name := str(v, "name"); name != "" {
						tags = append(tags, name)
					}
				case string:
					tags = append(tags, v)
				case float64:
					tags = append(tags, strconv.FormatFloat(v, 'f', -1, 64))
				}
			}
		}
	}
	if len(tags) == 0 {
		if text != "" {
			return Display{Text: text}
		}
		return Display{Text: SentinelNoTags, Empty: true}
	}
	return Display{Tags: tags, Text: strings.Join(tags, ", ")}
}

func decodeDropdown(m map[string]any, text string) Display {
	var labels []string
	if m != nil {
		if list, ok := m["labels"].([]any); ok {
			for _, l := range list {
				if s, ok := l.(string); ok {
					labels = append(labels, s)
				}
			}
		}
	}
	if len(labels) == 0 {
		return decodeText(nil, text)
	}
	return Display{Labels: labels, Text: strings.Join(labels, ", ")}
}

// decodeCheckbox honors the three equivalent truth encodings the host
// produces: checked:true, text "true", and text "Yes".
func decodeCheckbox(m map[string]any, text string) Display {
	checked := false
	if m != nil {
		switch v := m["checked"].(type) {
		case bool:
			checked = v
		case string:
			checked = v == "true"
		}
	}
	checked = checked || text == "true" || text == "Yes"
	d := Display{Checked: checked, Text: "No"}
	if checked {
		d.Text = "Yes"
	}
	return d
}

const maxStars = 5

// decodeRating keeps out-of-range values as stored; only the star
// rendering is clamped to the display width.
func decodeRating(m map[string]any, text string) Display {
	rating := 0
	if f, ok := num(m, "rating"); ok {
		rating = int(f)
	} else if n, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
		rating = n
	}
	filled := rating
	if filled < 0 {
		filled = 0
	}
	if filled > maxStars {
		filled = maxStars
	}
	return Display{
		Rating: rating,
		Text:   strings.Repeat("★", filled) + strings.Repeat("☆", maxStars-filled),
	}
}

func decodeColor(m map[string]any, text string) Display {
	color := str(m, "color")
	if color == "" {
		color = text
	}
	if color == "" {
		color = defaultColorHex
	}
	return Display{Color: color, Text: color}
}

// decodeProgress keeps the stored percentage unclamped; only the bar
// width rendering clamps to [0,100].
func decodeProgress(m map[string]any, text string) Display {
	pct := 0
	if f, ok := num(m, "percentage"); ok {
		pct = int(f)
	} else if n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(text), "%")); err == nil {
		pct = n
	}
	return Display{Percentage: pct, Text: fmt.Sprintf("%d%%", pct)}
}

func decodeLink(m map[string]any, text string) Display {
	url := str(m, "url")
	if url == "" {
		url = text
	}
	if url == "" {
		return Display{Text: SentinelNoLink, Empty: true}
	}
	disp := str(m, "text")
	if disp == "" {
		disp = text
	}
	if disp == "" {
		disp = url
	}
	return Display{URL: url, Text: disp}
}

func decodeEmail(m map[string]any, text string) Display {
	email := str(m, "email")
	if email == "" {
		email = text
	}
	if email == "" {
		return Display{Text: SentinelNoEmail, Empty: true}
	}
	return Display{URL: "mailto:" + email, Text: email}
}

func decodePhone(m map[string]any, text string) Display {
	phone := str(m, "phone")
	if phone == "" {
		phone = text
	}
	if phone == "" {
		return Display{Text: SentinelNoPhone, Empty: true}
	}
	return Display{URL: "tel:" + phone, Text: phone}
}

func decodeLocation(m map[string]any, text string) Display {
	address := str(m, "address")
	if address == "" {
		address = text
	}
	if address == "" {
		return Display{Text: SentinelEmpty, Empty: true}
	}
	return Display{Address: address, Text: address}
}

func decodeCountry(m map[string]any, text string) Display {
	name := str(m, "countryName")
	if name == "" {
		name = text
	}
	if name == "" {
		return Display{Text: SentinelEmpty, Empty: true}
	}
	return Display{Text: name}
}

func decodeNumbers(_ map[string]any, text string) Display {
	if text == "" {
		return Display{Text: "0", Empty: true}
	}
	return Display{Text: text}
}

func decodeTimestamp(_ map[string]any, text string) Display {
	return decodeText(nil, text)
}
