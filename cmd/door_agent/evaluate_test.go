package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/melissa/door-compliance/internal/config"
	"github.com/melissa/door-compliance/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoorFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAssessFile_Compliant(t *testing.T) {
	path := writeDoorFile(t, "suite_210.json",
		`{"is_on_accessible_route": true, "clear_width_inches": 34}`)

	assessment, err := assessFile(config.Config{}, path, "")
	require.NoError(t, err)
	assert.Equal(t, "suite_210", assessment.Label, "label should default to file name")
	assert.True(t, assessment.Summary.Compliant)
}

func TestAssessFile_ExplicitLabel(t *testing.T) {
	path := writeDoorFile(t, "door.json",
		`{"is_on_accessible_route": true, "clear_width_inches": 30}`)

	assessment, err := assessFile(config.Config{}, path, "Main entry")
	require.NoError(t, err)
	assert.Equal(t, "Main entry", assessment.Label)
	require.Len(t, assessment.Violations, 1)
	assert.Equal(t, "11B-404.2.3", assessment.Violations[0].CodeSection)
}

func TestAssessFile_MissingFile(t *testing.T) {
	_, err := assessFile(config.Config{}, filepath.Join(t.TempDir(), "missing.json"), "")
	assert.Error(t, err)
}

func TestAssessFile_InvalidJSON(t *testing.T) {
	path := writeDoorFile(t, "door.json", `{`)

	_, err := assessFile(config.Config{}, path, "")
	assert.Error(t, err)
}

func TestAssessFile_SchemaValidation(t *testing.T) {
	schemaPath, err := filepath.Abs(filepath.Join("..", "..", "schemas", "door_parameters.schema.json"))
	require.NoError(t, err)
	cfg := config.Config{SchemaPath: schemaPath}

	good := writeDoorFile(t, "good.json", `{"clear_width_inches": 34}`)
	_, err = assessFile(cfg, good, "")
	assert.NoError(t, err)

	bad := writeDoorFile(t, "bad.json", `{"clear_widht_inches": 34}`)
	_, err = assessFile(cfg, bad, "")
	assert.Error(t, err, "unknown fields should fail schema validation")
}

func TestWriteAssessments_Text(t *testing.T) {
	path := writeDoorFile(t, "door.json",
		`{"is_on_accessible_route": true, "clear_width_inches": 30}`)
	assessment, err := assessFile(config.Config{}, path, "Lobby")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeAssessments(&buf, "text", []*types.DoorAssessment{assessment}))
	assert.Contains(t, buf.String(), "Door assessment: Lobby")
	assert.Contains(t, buf.String(), "11B-404.2.3")
}

func TestWriteAssessments_JSONSingle(t *testing.T) {
	path := writeDoorFile(t, "door.json", `{"is_on_accessible_route": true}`)
	assessment, err := assessFile(config.Config{}, path, "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeAssessments(&buf, "json", []*types.DoorAssessment{assessment}))

	var decoded types.DoorAssessment
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, assessment.ID, decoded.ID)
}

func TestWriteAssessments_JSONMultiple(t *testing.T) {
	path := writeDoorFile(t, "door.json", `{"is_on_accessible_route": true}`)
	first, err := assessFile(config.Config{}, path, "a")
	require.NoError(t, err)
	second, err := assessFile(config.Config{}, path, "b")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeAssessments(&buf, "json", []*types.DoorAssessment{first, second}))

	var decoded []types.DoorAssessment
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "a", decoded[0].Label)
	assert.Equal(t, "b", decoded[1].Label)
}

func TestLoadCLIConfig_Defaults(t *testing.T) {
	cmd := evaluateCmd
	cfg, err := loadCLIConfig(cmd, "", cliOverrides{})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, 4, cfg.Concurrency)
}

func TestLoadCLIConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"format": "json", "concurrency": 2}`), 0644))

	cfg, err := loadCLIConfig(evaluateCmd, path, cliOverrides{})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 2, cfg.Concurrency)
}

func TestLoadCLIConfig_BadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"format": "xml"}`), 0644))

	_, err := loadCLIConfig(evaluateCmd, path, cliOverrides{})
	assert.Error(t, err)
}
