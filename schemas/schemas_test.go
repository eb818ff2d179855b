package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func loadSchema(t *testing.T) *gojsonschema.Schema {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(".", "snapshot.schema.json"))
	require.NoError(t, err, "should be able to read schema file")

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	require.NoError(t, err, "schema file should compile as a JSON Schema")
	return schema
}

func TestSnapshotSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", "snapshot.schema.json"))
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestSnapshotSchema_AcceptsMinimalSnapshot(t *testing.T) {
	schema := loadSchema(t)

	doc := `{
		"posting": {"title": "Backend Engineer", "requirements": []},
		"candidates": []
	}`
	result, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	require.NoError(t, err)
	assert.True(t, result.Valid(), "minimal snapshot should validate: %v", result.Errors())
}

func TestSnapshotSchema_RejectsMissingPosting(t *testing.T) {
	schema := loadSchema(t)

	result, err := schema.Validate(gojsonschema.NewStringLoader(`{"candidates": []}`))
	require.NoError(t, err)
	assert.False(t, result.Valid())
}

func TestSnapshotSchema_RejectsUnknownKind(t *testing.T) {
	schema := loadSchema(t)

	doc := `{
		"posting": {
			"title": "Backend Engineer",
			"requirements": [{"kind": "degree", "name": "BSc"}]
		},
		"candidates": []
	}`
	result, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	require.NoError(t, err)
	assert.False(t, result.Valid())
}

func TestSnapshotSchema_AcceptsFullSnapshot(t *testing.T) {
	schema := loadSchema(t)

	doc := `{
		"posting": {
			"title": "Backend Engineer",
			"description": "Builds services.",
			"requirements": [
				{"kind": "skill", "name": "Python", "minimum_years": 3, "important": true},
				{"kind": "experience", "name": "Software Engineer"},
				{"kind": "field_of_study", "name": "Computer Science", "important": true}
			]
		},
		"candidates": [
			{"name": "Ada", "held": [
				{"kind": "skill", "name": "Python", "years": 4, "level": "advanced"},
				{"kind": "experience", "name": "Software Engineer", "years": 5}
			]}
		],
		"edges": [
			{"kind": "skill", "a": "Python", "b": "Ruby"}
		]
	}`
	result, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	require.NoError(t, err)
	assert.True(t, result.Valid(), "full snapshot should validate: %v", result.Errors())
}
