package itemservice

import (
	"encoding/json"
	"strconv"

	"github.com/starford/fehu/internal/field"
	"github.com/starford/fehu/internal/host"
)

// statusSettings is the column settings shape for status columns,
// keyed by the string form of the selected option's numeric index.
type statusSettings struct {
	LabelsColors map[string]string `json:"labels_colors"`
	Labels       map[string]string `json:"labels"`
}

// normalize turns the host wire item into the domain snapshot: value
// payloads are parsed tolerantly, status values are enriched with the
// label color from column settings, and host-sourced fields land in
// the "General" category.
func normalize(p host.ItemPayload) *field.Item {
	item := &field.Item{
		ID:     p.ID,
		Name:   p.Name,
		Board:  field.Board{ID: p.Board.ID, Name: p.Board.Name},
		Fields: make([]field.Field, 0, len(p.ColumnValues)),
	}

	for _, cv := range p.ColumnValues {
		var valueObj map[string]any
		if cv.Value != "" {
			// Parse failure leaves valueObj nil and the raw value as is.
			_ = json.Unmarshal([]byte(cv.Value), &valueObj)
		}

		if field.Type(cv.Type) == field.TypeStatus && cv.Column.SettingsStr != "" && valueObj != nil {
			enrichStatus(valueObj, cv.Column.SettingsStr, cv.Text)
		}

		value := cv.Value
		if valueObj != nil {
			if normalized, err := json.Marshal(valueObj); err == nil {
				value = string(normalized)
			}
		}

		title := cv.Column.Title
		if title == "" {
			title = cv.ID
		}
		category := cv.Category
		if category == "" {
			category = "General"
		}

		item.Fields = append(item.Fields, field.Field{
			ID:       cv.ID,
			Title:    title,
			Type:     field.Type(cv.Type),
			Text:     cv.Text,
			Value:    value,
			Category: category,
		})
	}
	return item
}

// enrichStatus merges color and label from the column settings table
// into the parsed value, keyed by the selected index. The label
// override only applies when the color lookup succeeds.
func enrichStatus(valueObj map[string]any, settingsStr, text string) {
	var settings statusSettings
	if err := json.Unmarshal([]byte(settingsStr), &settings); err != nil {
		return
	}
	idx, ok := valueObj["index"].(float64)
	if !ok || settings.LabelsColors == nil {
		return
	}
	key := strconv.Itoa(int(idx))
	color, ok := settings.LabelsColors[key]
	if !ok || color == "" {
		return
	}
	label := settings.Labels[key]
	if label == "" {
		label = text
	}
	valueObj["color"] = color
	valueObj["label"] = label
}
