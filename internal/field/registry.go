package field

// typeSpec is one row of the type dispatch table: how a type decodes,
// how it encodes, whether it is host-computed (read-only), and which
// icon the panel shows for it.
type typeSpec struct {
	decode   func(raw map[string]any, text string) Display
	encode   func(v any) (string, error)
	readOnly bool
	icon     string
}

// registry drives both codec directions and the UI metadata lookups.
// Read-only types carry no encode function; the service layer rejects
// writes to them before Encode is ever reached.
var registry = map[Type]typeSpec{
	TypeText:        {decode: decodeText, encode: encodeString, icon: "📝"},
	TypeLongText:    {decode: decodeText, encode: encodeLongText, icon: "📄"},
	TypeStatus:      {decode: decodeStatus, encode: encodeStatus, icon: "🔵"},
	TypeDate:        {decode: decodeDate, encode: encodeDate, icon: "📅"},
	TypePeople:      {decode: decodePeople, encode: encodePeople, icon: "👤"},
	TypeNumbers:     {decode: decodeNumbers, encode: encodeNumbers, icon: "🔢"},
	TypeDropdown:    {decode: decodeDropdown, encode: encodeDropdown, icon: "📋"},
	TypeTimeline:    {decode: decodeTimeline, encode: encodeTimeline, icon: "📊"},
	TypeTags:        {decode: decodeTags, encode: encodeTags, icon: "🏷️"},
	TypeLink:        {decode: decodeLink, encode: encodeLink, icon: "🔗"},
	TypeEmail:       {decode: decodeEmail, encode: encodeEmail, icon: "📧"},
	TypePhone:       {decode: decodePhone, encode: encodePhone, icon: "📞"},
	TypeCheckbox:    {decode: decodeCheckbox, encode: encodeCheckbox, icon: "☑️"},
	TypeRating:      {decode: decodeRating, encode: encodeRating, icon: "⭐"},
	TypeColor:       {decode: decodeColor, encode: encodeColor, icon: "🎨"},
	TypeLocation:    {decode: decodeLocation, encode: encodeLocation, icon: "📍"},
	TypeCountry:     {decode: decodeCountry, encode: encodeCountry, icon: "🌍"},
	TypeProgress:    {decode: decodeProgress, readOnly: true, icon: "📈"},
	TypeFormula:     {decode: decodeText, readOnly: true, icon: "🧮"},
	TypeAutoNumber:  {decode: decodeText, readOnly: true, icon: "#️⃣"},
	TypeCreationLog: {decode: decodeTimestamp, readOnly: true, icon: "📝"},
	TypeLastUpdated: {decode: decodeTimestamp, readOnly: true, icon: "🕐"},
	TypeFile:        {decode: decodeText, readOnly: true, icon: "📎"},
	TypeDependency:  {decode: decodeText, readOnly: true, icon: "🔀"},
	TypeMirror:      {decode: decodeText, readOnly: true, icon: "🪞"},
	TypeBoardRel:    {decode: decodeText, readOnly: true, icon: "🔗"},
}

// defaultSpec serves types outside the fixed enumeration: plain text
// display, pass-through encode.
var defaultSpec = typeSpec{decode: decodeText, encode: encodePassthrough, icon: "📋"}

func specFor(t Type) typeSpec {
	if s, ok := registry[t]; ok {
		return s
	}
	return defaultSpec
}

// ReadOnly reports whether the type is host-computed and never
// client-writable.
func ReadOnly(t Type) bool {
	return specFor(t).readOnly
}

// Icon returns the panel icon for the type.
func Icon(t Type) string {
	return specFor(t).icon
}

// Types lists the fixed type enumeration in display order.
func Types() []Type {
	return []Type{
		TypeText, TypeLongText, TypeStatus, TypeDate, TypePeople,
		TypeNumbers, TypeDropdown, TypeTimeline, TypeTags, TypeLink,
		TypeEmail, TypePhone, TypeCheckbox, TypeRating, TypeColor,
		TypeLocation, TypeCountry, TypeProgress, TypeFormula,
		TypeAutoNumber, TypeCreationLog, TypeLastUpdated, TypeFile,
		TypeDependency, TypeMirror, TypeBoardRel,
	}
}
