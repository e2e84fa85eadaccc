package mcpserver

// FieldTypeContract describes the write payload each field type expects.
// LLM consumers should read it before calling update_field.
const FieldTypeContract = `# Fehu Field Type Contract

Every field of a board item has a type. The type decides how the raw
value is displayed and what JSON payload ` + "`update_field`" + ` accepts.

## Writable types

| Type      | Payload for update_field                          | Notes |
|-----------|---------------------------------------------------|-------|
| text      | ` + "`\"plain string\"`" + `                       | also long-text |
| status    | ` + "`{\"label\": \"Done\"}`" + `                  | label must exist on the board |
| dropdown  | ` + "`{\"labels\": [\"Option A\"]}`" + `           | list of label strings |
| numbers   | ` + "`\"42.5\"`" + ` or ` + "`42.5`" + `           | sent to the host as a string |
| date      | ` + "`{\"date\": \"2026-08-28\"}`" + `             | ISO date |
| timeline  | ` + "`{\"from\": \"2026-08-01\", \"to\": \"2026-08-28\"}`" + ` | |
| people    | ` + "`{\"personsAndTeams\": [{\"id\": 123, \"kind\": \"person\"}]}`" + ` | |
| tags      | ` + "`{\"tag_ids\": [101, 102]}`" + `              | |
| checkbox  | ` + "`{\"checked\": true}`" + `                    | false clears the box |
| rating    | ` + "`{\"rating\": 4}`" + `                        | invalid values degrade to 0 |
| link      | ` + "`{\"url\": \"https://...\", \"text\": \"Site\"}`" + ` | |
| email     | ` + "`{\"email\": \"a@b.com\", \"text\": \"a@b.com\"}`" + ` | |
| phone     | ` + "`{\"phone\": \"+1555...\"}`" + `              | |
| color     | ` + "`{\"color\": \"#ff0000\"}`" + `               | |
| location  | ` + "`{\"lat\": 40.7, \"lng\": -74.0, \"address\": \"NYC\"}`" + ` | |
| country   | ` + "`{\"countryCode\": \"US\", \"countryName\": \"United States\"}`" + ` | a plain country name is also accepted |

## Read-only types

These types are computed or host-owned; ` + "`update_field`" + ` rejects them:

formula, auto-number, progress, creation-log, last-updated, file,
dependency, mirror, board-relation.

## Rules

1. Writes go to the host first; the panel never merges a write locally.
   After a successful write the item is re-fetched and the snapshot
   replaced wholesale.
2. A failed write leaves the snapshot untouched and surfaces an error.
3. Unknown field types pass the payload through to the host unchanged.
`
