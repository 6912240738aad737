package export

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := `[
		{"title":"T1","mapping":{"n1":{"message":{"content":{"parts":["hi"]}}}}},
		{"mapping":{}},
		{"title":null},
		42
	]`

	exp, err := Parse([]byte(data))
	require.NoError(t, err)
	require.Equal(t, 4, exp.Len())
	require.Len(t, exp.Tree, 4)

	assert.Equal(t, "T1", exp.Conversations[0].Title)
	assert.Equal(t, UntitledChat, exp.Conversations[1].Title)
	assert.Equal(t, UntitledChat, exp.Conversations[2].Title)
	assert.Equal(t, UntitledChat, exp.Conversations[3].Title)
	assert.Nil(t, exp.Conversations[3].Mapping)
}

func TestParse_NotArray(t *testing.T) {
	_, err := Parse([]byte(`{"title":"x"}`))
	require.ErrorIs(t, err, ErrNotArray)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`[{"title":`))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversations.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"title":"A"}]`), 0644))

	exp, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, exp.Len())
	assert.Equal(t, "A", exp.Conversations[0].Title)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFragments_SkipsMalformedNodes(t *testing.T) {
	data := `[{"title":"T","mapping":{
		"a":{"message":{"content":{"parts":["hello"]}}},
		"b":{"parent":"a"}
	}}]`

	exp, err := Parse([]byte(data))
	require.NoError(t, err)

	got := slices.Collect(exp.Conversations[0].Fragments())
	assert.Equal(t, []string{"hello"}, got)
}

func TestFragments_Shapes(t *testing.T) {
	data := `[{"mapping":{
		"1":{"message":null},
		"2":{"message":"text"},
		"3":{"message":{"content":"flat"}},
		"4":{"message":{"content":{"parts":"not a list"}}},
		"5":{"message":{"content":{}}},
		"6":{"message":{"content":{"parts":["x", 7, null, {"k":"v"}, "y"]}}},
		"7":"node"
	}}]`

	exp, err := Parse([]byte(data))
	require.NoError(t, err)

	got := slices.Collect(exp.Conversations[0].Fragments())
	assert.Equal(t, []string{"x", "y"}, got)
}

func TestFragments_Restartable(t *testing.T) {
	data := `[{"mapping":{
		"b":{"message":{"content":{"parts":["b1","b2"]}}},
		"a":{"message":{"content":{"parts":["a1"]}}}
	}}]`

	exp, err := Parse([]byte(data))
	require.NoError(t, err)

	conv := exp.Conversations[0]
	first := slices.Collect(conv.Fragments())
	second := slices.Collect(conv.Fragments())

	assert.Equal(t, []string{"a1", "b1", "b2"}, first)
	assert.Equal(t, first, second)
}

func TestFragments_EarlyStop(t *testing.T) {
	data := `[{"mapping":{"n":{"message":{"content":{"parts":["1","2","3"]}}}}}]`

	exp, err := Parse([]byte(data))
	require.NoError(t, err)

	var seen []string
	for text := range exp.Conversations[0].Fragments() {
		seen = append(seen, text)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"1", "2"}, seen)
}
