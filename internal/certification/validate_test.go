package certification

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCert(id string, prereqs ...string) Certification {
	return Certification{
		ID:         id,
		Name:       strings.ToUpper(id),
		Provider:   ProviderAWS,
		Level:      LevelAssociate,
		Difficulty: 3,
		ExamTopics: []ExamTopic{
			{Name: "Topic A", Weight: 60},
			{Name: "Topic B", Weight: 40},
		},
		Prerequisites: prereqs,
	}
}

func problemsOf(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Problems
}

func TestValidate_Valid(t *testing.T) {
	_, err := New([]Certification{validCert("a"), validCert("b", "a")})
	assert.NoError(t, err)
}

func TestValidate_Empty(t *testing.T) {
	_, err := New(nil)
	problems := problemsOf(t, err)
	assert.Contains(t, problems[0], "no certifications")
}

func TestValidate_DuplicateID(t *testing.T) {
	_, err := New([]Certification{validCert("a"), validCert("a")})
	assert.Contains(t, err.Error(), `duplicate certification ID: "a"`)
}

func TestValidate_DanglingPrerequisite(t *testing.T) {
	_, err := New([]Certification{validCert("a", "ghost")})
	assert.Contains(t, err.Error(), `nonexistent prerequisite "ghost"`)
}

func TestValidate_Cycle(t *testing.T) {
	_, err := New([]Certification{validCert("a", "b"), validCert("b", "a")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle detected")
}

func TestValidate_SelfPrerequisite(t *testing.T) {
	_, err := New([]Certification{validCert("a", "a")})
	assert.Contains(t, err.Error(), "lists itself as a prerequisite")
}

func TestValidate_FieldChecks(t *testing.T) {
	bad := validCert("bad")
	bad.Difficulty = 7
	bad.Provider = "oracle"
	bad.Level = "grandmaster"
	bad.Roles = []Role{"astronaut"}
	bad.ExamTopics = []ExamTopic{{Name: "", Weight: 120}}

	problems := problemsOf(t, func() error { _, err := New([]Certification{bad}); return err }())
	joined := strings.Join(problems, "\n")

	assert.Contains(t, joined, "difficulty must be in [1, 5], got 7")
	assert.Contains(t, joined, `unknown provider "oracle"`)
	assert.Contains(t, joined, `unknown level "grandmaster"`)
	assert.Contains(t, joined, `unknown role "astronaut"`)
	assert.Contains(t, joined, "empty name")
	assert.Contains(t, joined, "weight must be in [0, 100], got 120")
	assert.Contains(t, joined, "weights sum to 120")
}

func TestValidate_NoTopics(t *testing.T) {
	c := validCert("a")
	c.ExamTopics = nil
	_, err := New([]Certification{c})
	assert.Contains(t, err.Error(), "has no exam topics")
}

func TestValidate_WeightTolerance(t *testing.T) {
	c := validCert("a")
	c.ExamTopics = []ExamTopic{{Name: "x", Weight: 33}, {Name: "y", Weight: 33}, {Name: "z", Weight: 33}}
	_, err := New([]Certification{c})
	assert.NoError(t, err, "99%% total is within tolerance")
}

const validJSONCatalog = `{
  "version": "v1.2.0",
  "certifications": [
    {
      "id": "k8s-basics",
      "name": "Kubernetes Basics",
      "provider": "vendor-neutral",
      "level": "foundational",
      "difficulty": 2,
      "examTopics": [
        {"name": "Pods", "weight": 50, "subtopics": ["Lifecycle"]},
        {"name": "Services", "weight": 50}
      ],
      "roles": ["devops-engineer"]
    }
  ]
}`

func TestParseJSON_Valid(t *testing.T) {
	cat, err := ParseJSON([]byte(validJSONCatalog))
	require.NoError(t, err)

	c, ok := cat.Lookup("k8s-basics")
	require.True(t, ok)
	assert.Equal(t, ProviderVendorNeutral, c.Provider)
	assert.Equal(t, 2, c.Difficulty)
	assert.Equal(t, []string{"Lifecycle"}, c.ExamTopics[0].Subtopics)
	assert.True(t, c.HasRole(RoleDevOpsEngineer))
}

func TestParseJSON_SchemaViolation(t *testing.T) {
	doc := strings.Replace(validJSONCatalog, `"difficulty": 2`, `"difficulty": 9`, 1)
	_, err := ParseJSON([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestParseJSON_UnsupportedVersion(t *testing.T) {
	doc := strings.Replace(validJSONCatalog, `"v1.2.0"`, `"v2.0.0"`, 1)
	_, err := ParseJSON([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestParseJSON_InvalidVersion(t *testing.T) {
	doc := strings.Replace(validJSONCatalog, `"v1.2.0"`, `"latest"`, 1)
	_, err := ParseJSON([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a semantic version")
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON([]byte(`{"version":`))
	assert.Error(t, err)
}

func TestLoadFile_YAML(t *testing.T) {
	doc := `version: 1.0.0
certifications:
  - id: tf-basics
    name: Terraform Basics
    provider: vendor-neutral
    level: associate
    difficulty: 2
    examTopics:
      - name: Workflow
        weight: 40
      - name: State
        weight: 60
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())

	c, err := cat.Get("tf-basics")
	require.NoError(t, err)
	assert.Equal(t, 60.0, c.ExamTopics[1].Weight)
}

func TestLoadFile_StructuralErrorAfterSchema(t *testing.T) {
	doc := strings.Replace(validJSONCatalog, `"roles": ["devops-engineer"]`, `"prerequisites": ["missing"]`, 1)
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := LoadFile(path)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
