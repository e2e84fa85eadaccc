package field

import (
	"strings"
	"testing"
)

func TestDecodeEmptySentinels(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeText, SentinelEmpty},
		{TypeLongText, SentinelEmpty},
		{TypeStatus, SentinelEmpty},
		{TypeDate, SentinelNoDate},
		{TypePeople, SentinelNoOne},
		{TypeNumbers, "0"},
		{TypeDropdown, SentinelEmpty},
		{TypeTimeline, SentinelNoRange},
		{TypeTags, SentinelNoTags},
		{TypeLink, SentinelNoLink},
		{TypeEmail, SentinelNoEmail},
		{TypePhone, SentinelNoPhone},
		{TypeCheckbox, "No"},
		{TypeRating, "☆☆☆☆☆"},
		{TypeColor, defaultColorHex},
		{TypeLocation, SentinelEmpty},
		{TypeCountry, SentinelEmpty},
		{TypeProgress, "0%"},
		{TypeFormula, SentinelEmpty},
		{TypeAutoNumber, SentinelEmpty},
		{TypeCreationLog, SentinelEmpty},
		{TypeLastUpdated, SentinelEmpty},
		{TypeFile, SentinelEmpty},
		{TypeDependency, SentinelEmpty},
		{TypeMirror, SentinelEmpty},
		{TypeBoardRel, SentinelEmpty},
	}
	for _, tt := range tests {
		got := Decode(tt.typ, "", "")
		if got.Text != tt.want {
			t.Errorf("Decode(%s, empty) text = %q, want %q", tt.typ, got.Text, tt.want)
		}
	}
}

func TestDecodeMalformedPayloadFallsBackToText(t *testing.T) {
	for _, typ := range Types() {
		got := Decode(typ, `{not json`, "fallback")
		if got.Text == "" {
			t.Errorf("Decode(%s, malformed) produced empty text", typ)
		}
	}
}

func TestDecodeStatus(t *testing.T) {
	d := Decode(TypeStatus, `{"label":"In Progress","color":"#fdab3d"}`, "In Progress")
	if d.Label != "In Progress" || d.Color != "#fdab3d" {
		t.Errorf("status = %+v", d)
	}
	if d.Foreground != darkForeground {
		t.Errorf("foreground = %q, want dark on light orange", d.Foreground)
	}

	// Missing color defaults to neutral gray.
	d = Decode(TypeStatus, `{"label":"Done"}`, "Done")
	if d.Color != neutralStatusHex {
		t.Errorf("default color = %q, want %q", d.Color, neutralStatusHex)
	}
}

func TestDecodePeople(t *testing.T) {
	raw := `{"personsAndTeams":[{"id":"101","name":"Sarah Chen","kind":"person"},{"id":"102","name":"John Doe","kind":"person"}]}`
	d := Decode(TypePeople, raw, "")
	if d.Text != "Sarah Chen, John Doe" {
		t.Errorf("people text = %q", d.Text)
	}
	if len(d.People) != 2 {
		t.Errorf("people = %v", d.People)
	}

	d = Decode(TypePeople, `{"personsAndTeams":[]}`, "")
	if d.Text != SentinelNoOne || !d.Empty {
		t.Errorf("empty people = %+v", d)
	}
}

func TestDecodeDate(t *testing.T) {
	d := Decode(TypeDate, `{"date":"2024-12-01"}`, "2024-12-01")
	if d.Text != "Dec 1, 2024" {
		t.Errorf("date text = %q", d.Text)
	}
}

func TestDecodeTimeline(t *testing.T) {
	d := Decode(TypeTimeline, `{"from":"2024-12-01","to":"2025-02-28"}`, "")
	if d.Text != "Dec 1 → Feb 28, 2025" {
		t.Errorf("timeline text = %q", d.Text)
	}

	// Either side absent renders "?".
	d = Decode(TypeTimeline, `{"from":"2024-12-01"}`, "")
	if !strings.HasSuffix(d.Text, SentinelUnknown) {
		t.Errorf("open timeline text = %q", d.Text)
	}
}

func TestDecodeTagsShapes(t *testing.T) {
	// Object entries with a name field.
	d := Decode(TypeTags, `{"tag_ids":[{"id":1,"name":"Frontend"},{"id":2,"name":"UX"}]}`, "")
	if d.Text != "Frontend, UX" {
		t.Errorf("object tags = %q", d.Text)
	}
	// Bare labels.
	d = Decode(TypeTags, `{"tag_ids":["a","b"]}`, "")
	if d.Text != "a, b" {
		t.Errorf("bare tags = %q", d.Text)
	}
}

func TestCheckboxTruthEncodings(t *testing.T) {
	tests := []struct {
		raw, text string
		want      bool
	}{
		{`{"checked":true}`, "", true},
		{"", "true", true},
		{"", "Yes", true},
		{`{"checked":"true"}`, "", true},
		{"", "No", false},
		{"", "", false},
	}
	for _, tt := range tests {
		if got := Decode(TypeCheckbox, tt.raw, tt.text).Checked; got != tt.want {
			t.Errorf("Decode(checkbox, %q, %q).Checked = %v, want %v", tt.raw, tt.text, got, tt.want)
		}
	}
}

func TestRatingDecodeIsUnclamped(t *testing.T) {
	d := Decode(TypeRating, `{"rating":9}`, "")
	if d.Rating != 9 {
		t.Errorf("rating = %d, want 9 kept as stored", d.Rating)
	}
	// Star rendering clamps to the display width.
	if d.Text != "★★★★★" {
		t.Errorf("stars = %q", d.Text)
	}
}

func TestProgressDecodeIsUnclamped(t *testing.T) {
	d := Decode(TypeProgress, `{"percentage":150}`, "150%")
	if d.Percentage != 150 {
		t.Errorf("percentage = %d, want 150 kept as stored", d.Percentage)
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		hex, want string
	}{
		{"#FFFFFF", darkForeground},
		{"#000000", lightForeground},
		{"not-a-color", lightForeground},
		{"", lightForeground},
		{"#fdab3d", darkForeground},
	}
	for _, tt := range tests {
		if got := Contrast(tt.hex); got != tt.want {
			t.Errorf("Contrast(%q) = %q, want %q", tt.hex, got, tt.want)
		}
	}
}

// Round-trip law: decoding an encoded value reproduces the display
// equivalent of the input under that type's formatting rules.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		typ   Type
		value any
		check func(t *testing.T, d Display)
	}{
		{TypeStatus, "Done", func(t *testing.T, d Display) {
			if d.Label != "Done" {
				t.Errorf("label = %q", d.Label)
			}
		}},
		{TypeCheckbox, true, func(t *testing.T, d Display) {
			if !d.Checked {
				t.Error("checked = false")
			}
		}},
		{TypeRating, 4, func(t *testing.T, d Display) {
			if d.Rating != 4 {
				t.Errorf("rating = %d", d.Rating)
			}
		}},
		{TypeDate, "2025-01-15", func(t *testing.T, d Display) {
			if d.Text != "Jan 15, 2025" {
				t.Errorf("date = %q", d.Text)
			}
		}},
		{TypeTimeline, Timeline{From: "2024-12-01", To: "2025-02-28"}, func(t *testing.T, d Display) {
			if d.From != "2024-12-01" || d.To != "2025-02-28" {
				t.Errorf("timeline = %+v", d)
			}
		}},
		{TypeDropdown, []string{"Sprint 4"}, func(t *testing.T, d Display) {
			if d.Text != "Sprint 4" {
				t.Errorf("dropdown = %q", d.Text)
			}
		}},
		{TypeTags, []string{"Frontend", "UX"}, func(t *testing.T, d Display) {
			if d.Text != "Frontend, UX" {
				t.Errorf("tags = %q", d.Text)
			}
		}},
		{TypeColor, "#6161FF", func(t *testing.T, d Display) {
			if d.Color != "#6161FF" {
				t.Errorf("color = %q", d.Color)
			}
		}},
		{TypeLocation, Location{Lat: 40.7128, Lng: -74.006, Address: "New York, NY"}, func(t *testing.T, d Display) {
			if d.Address != "New York, NY" {
				t.Errorf("address = %q", d.Address)
			}
		}},
		{TypeLink, "https://example.com", func(t *testing.T, d Display) {
			if d.URL != "https://example.com" {
				t.Errorf("url = %q", d.URL)
			}
		}},
		{TypeEmail, "a@b.com", func(t *testing.T, d Display) {
			if d.Text != "a@b.com" {
				t.Errorf("email = %q", d.Text)
			}
		}},
		{TypePhone, "+15552345678", func(t *testing.T, d Display) {
			if d.Text != "+15552345678" {
				t.Errorf("phone = %q", d.Text)
			}
		}},
	}
	for _, tt := range tests {
		payload, err := Encode(tt.typ, tt.value)
		if err != nil {
			t.Fatalf("Encode(%s): %v", tt.typ, err)
		}
		tt.check(t, Decode(tt.typ, payload, ""))
	}
}

func TestEncodeCountry(t *testing.T) {
	payload, err := Encode(TypeCountry, map[string]any{"countryCode": "US", "countryName": "United States"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if d := Decode(TypeCountry, payload, ""); d.Text != "United States" {
		t.Errorf("country from payload form = %q", d.Text)
	}
	if !strings.Contains(payload, `"countryCode":"US"`) {
		t.Errorf("payload = %s", payload)
	}

	payload, err = Encode(TypeCountry, "France")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if d := Decode(TypeCountry, payload, ""); d.Text != "France" {
		t.Errorf("country from string form = %q", d.Text)
	}
}

func TestEncodeRatingDegradesToZero(t *testing.T) {
	payload, err := Encode(TypeRating, "not-a-number")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if payload != `{"rating":0}` {
		t.Errorf("payload = %s", payload)
	}
}

func TestEncodePeople(t *testing.T) {
	payload, err := Encode(TypePeople, []string{"101", "102"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	d := Decode(TypePeople, payload, "")
	// Write payloads carry ids only; names come back on the next fetch.
	if len(d.People) != 0 {
		t.Errorf("people names before refetch = %v", d.People)
	}
	if !strings.Contains(payload, `"kind":"person"`) {
		t.Errorf("payload = %s", payload)
	}
}

func TestEncodeReadOnlyTypeHasNoPayload(t *testing.T) {
	for _, typ := range []Type{TypeFormula, TypeAutoNumber, TypeProgress, TypeMirror} {
		if _, err := Encode(typ, "x"); err == nil {
			t.Errorf("Encode(%s) succeeded, want error", typ)
		}
	}
}

func TestEncodeUnknownTypePassthrough(t *testing.T) {
	payload, err := Encode(Type("future-type"), "raw-value")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if payload != "raw-value" {
		t.Errorf("payload = %q", payload)
	}
	payload, err = Encode(Type("future-type"), map[string]any{"k": "v"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if payload != `{"k":"v"}` {
		t.Errorf("payload = %q", payload)
	}
}

func TestReadOnlyLookup(t *testing.T) {
	readOnly := []Type{
		TypeFormula, TypeAutoNumber, TypeProgress, TypeCreationLog,
		TypeLastUpdated, TypeFile, TypeDependency, TypeMirror, TypeBoardRel,
	}
	for _, typ := range readOnly {
		if !ReadOnly(typ) {
			t.Errorf("ReadOnly(%s) = false", typ)
		}
	}
	for _, typ := range []Type{TypeText, TypeStatus, TypeCheckbox} {
		if ReadOnly(typ) {
			t.Errorf("ReadOnly(%s) = true", typ)
		}
	}
}
