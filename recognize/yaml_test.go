package recognize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAML_SingleMapping(t *testing.T) {
	r := NewYAML()

	content := `tool: searchResources
args:
  query: weather in tokyo
  limit: 5`

	require.True(t, r.CanAttempt(content))
	calls := r.Extract(content)
	require.Len(t, calls, 1)
	assert.Equal(t, "searchResources", calls[0].Name)
	assert.Equal(t, "weather in tokyo", calls[0].Args["query"])
	assert.Equal(t, 5, calls[0].Args["limit"])
}

func TestYAML_Sequence(t *testing.T) {
	r := NewYAML()

	content := `- tool: searchResources
  args:
    query: weather
- tool: readResource
  args:
    path: notes.md`

	calls := r.Extract(content)
	require.Len(t, calls, 2)
	assert.Equal(t, "searchResources", calls[0].Name)
	assert.Equal(t, "readResource", calls[1].Name)
	assert.Equal(t, "notes.md", calls[1].Args["path"])
}

func TestYAML_FencedBlock(t *testing.T) {
	r := NewYAML()

	content := "Here is the call:\n\n```yaml\ntool: readResource\nargs:\n  path: a.md\n```\n\nDone."
	require.True(t, r.CanAttempt(content))
	calls := r.Extract(content)
	require.Len(t, calls, 1)
	assert.Equal(t, "readResource", calls[0].Name)
	assert.Equal(t, "a.md", calls[0].Args["path"])
}

func TestYAML_FencedBlockYmlTag(t *testing.T) {
	r := NewYAML()

	content := "```yml\ntool: searchResources\nargs:\n  query: q\n```"
	calls := r.Extract(content)
	require.Len(t, calls, 1)
	assert.Equal(t, "searchResources", calls[0].Name)
}

func TestYAML_MappingWithoutName(t *testing.T) {
	r := NewYAML()

	content := `args:
  query: weather`

	assert.Nil(t, r.Extract(content))
}

func TestYAML_ScalarDocument(t *testing.T) {
	r := NewYAML()

	assert.Nil(t, r.Extract("just a plain sentence"))
}

func TestYAML_CanAttempt(t *testing.T) {
	r := NewYAML()

	assert.True(t, r.CanAttempt("tool: searchResources\nargs: {}"))
	assert.True(t, r.CanAttempt("- tool: searchResources"))
	assert.False(t, r.CanAttempt("I used a tool yesterday."))
	assert.False(t, r.CanAttempt("tool:"))
}
