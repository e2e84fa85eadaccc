package host

// DemoItem returns the built-in demo board item: a project-management
// card with a wide spread of column types, grouped into the categories
// the panel shows when no real host data is available.
func DemoItem() ItemPayload {
	cv := func(id, title, typ, text, value, category string) ColumnValuePayload {
		return ColumnValuePayload{
			ID:       id,
			Text:     text,
			Value:    value,
			Type:     typ,
			Column:   ColumnPayload{Title: title},
			Category: category,
		}
	}

	return ItemPayload{
		ID:    "demo-item-001",
		Name:  "Website Redesign Project - Phase 2",
		Board: BoardPayload{ID: "board-001", Name: "Enterprise Projects 2024"},
		ColumnValues: []ColumnValuePayload{
			cv("name", "Task Name", "text", "Website Redesign Project - Phase 2", "", "Basic Info"),
			cv("status", "Status", "status", "In Progress", `{"label":"In Progress","color":"#fdab3d"}`, "Basic Info"),
			cv("priority", "Priority", "status", "High", `{"label":"High","color":"#e2445c"}`, "Basic Info"),
			cv("item_id", "Item ID", "auto-number", "PRJ-2024-0847", "", "Basic Info"),

			cv("owner", "Project Owner", "people", "Sarah Chen", `{"personsAndTeams":[{"id":"101","name":"Sarah Chen","kind":"person"}]}`, "People"),
			cv("assigned_to", "Assigned Team", "people", "John Doe, Emily Wilson, Mike Ross", `{"personsAndTeams":[{"id":"102","name":"John Doe","kind":"person"},{"id":"103","name":"Emily Wilson","kind":"person"},{"id":"104","name":"Mike Ross","kind":"person"}]}`, "People"),
			cv("qa_lead", "QA Lead", "people", "Lisa Park", `{"personsAndTeams":[{"id":"106","name":"Lisa Park","kind":"person"}]}`, "People"),

			cv("start_date", "Start Date", "date", "2024-12-01", `{"date":"2024-12-01"}`, "Timeline"),
			cv("due_date", "Due Date", "date", "2025-02-28", `{"date":"2025-02-28"}`, "Timeline"),
			cv("timeline", "Project Timeline", "timeline", "Dec 1, 2024 → Feb 28, 2025", `{"from":"2024-12-01","to":"2025-02-28"}`, "Timeline"),
			cv("created_at", "Created Date", "creation-log", "Nov 15, 2024 by Sarah Chen", "", "Timeline"),
			cv("last_updated", "Last Updated", "last-updated", "Dec 9, 2024 at 2:45 PM", "", "Timeline"),

			cv("budget", "Budget", "numbers", "$125,000", `{"value":125000}`, "Finance"),
			cv("spent", "Amount Spent", "numbers", "$47,500", `{"value":47500}`, "Finance"),
			cv("remaining", "Budget Remaining", "formula", "$77,500", "", "Finance"),
			cv("estimated_hours", "Estimated Hours", "numbers", "840", `{"value":840}`, "Finance"),

			cv("progress", "Progress", "progress", "38%", `{"percentage":38}`, "Progress"),
			cv("phase", "Current Phase", "status", "Design", `{"label":"Design","color":"#9d50dd"}`, "Progress"),
			cv("sprint", "Sprint", "dropdown", "Sprint 4", `{"labels":["Sprint 4"]}`, "Progress"),
			cv("completed_tasks", "Completed Tasks", "formula", "24 of 63", "", "Progress"),

			cv("client_name", "Client Name", "text", "Acme Corporation", "", "Client"),
			cv("client_email", "Client Email", "email", "jadams@acmecorp.com", `{"email":"jadams@acmecorp.com","text":"jadams@acmecorp.com"}`, "Client"),
			cv("client_phone", "Client Phone", "phone", "+1 (555) 234-5678", `{"phone":"+15552345678","countryShortName":"US"}`, "Client"),
			cv("account_manager", "Account Manager", "people", "Rachel Green", `{"personsAndTeams":[{"id":"107","name":"Rachel Green","kind":"person"}]}`, "Client"),

			cv("project_brief", "Project Brief", "link", "View Document", `{"url":"https://docs.google.com/document/d/project-brief","text":"View Document"}`, "Links"),
			cv("github_repo", "GitHub Repository", "link", "View Repository", `{"url":"https://github.com/acme/website-redesign","text":"View Repository"}`, "Links"),
			cv("staging_url", "Staging URL", "link", "https://staging.acmecorp.com", `{"url":"https://staging.acmecorp.com","text":"https://staging.acmecorp.com"}`, "Links"),

			cv("tags", "Tags", "tags", "Frontend, UX, High-Priority, Q1-2025", `{"tag_ids":[{"id":1,"name":"Frontend"},{"id":2,"name":"UX"},{"id":3,"name":"High-Priority"},{"id":4,"name":"Q1-2025"}]}`, "Categories"),
			cv("department", "Department", "dropdown", "Product Development", `{"labels":["Product Development"]}`, "Categories"),
			cv("complexity", "Complexity", "status", "Complex", `{"label":"Complex","color":"#bb3354"}`, "Categories"),

			cv("description", "Description", "long-text", "Complete redesign of Acme Corporation's corporate website including new information architecture, responsive design implementation, CMS migration, and performance optimization.", "", "Details"),
			cv("notes", "Internal Notes", "long-text", "Client has requested weekly status calls every Tuesday at 10 AM EST. Budget approval pending for additional animation work.", "", "Details"),

			cv("rating", "Client Satisfaction", "rating", "4", `{"rating":4}`, "Metrics"),
			cv("billable", "Billable", "checkbox", "Yes", `{"checked":true}`, "Metrics"),
			cv("contract_signed", "Contract Signed", "checkbox", "Yes", `{"checked":true}`, "Metrics"),
			cv("color_code", "Color Code", "color", "#6161FF", `{"color":"#6161FF"}`, "Metrics"),
			cv("location", "Office Location", "location", "New York, NY", `{"lat":40.7128,"lng":-74.0060,"address":"New York, NY"}`, "Metrics"),
			cv("country", "Country", "country", "United States", `{"countryCode":"US","countryName":"United States"}`, "Metrics"),
		},
	}
}
