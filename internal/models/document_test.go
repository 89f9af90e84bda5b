package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Init(t *testing.T) {
	doc := NewDocument(nil)
	assert.False(t, doc.IsInitialized())

	doc.Init()
	require.True(t, doc.IsInitialized())
	id := doc.GetID()

	// повторный Init не меняет id
	doc.Init()
	assert.Equal(t, id, doc.GetID())
}

func TestDocument_SetID(t *testing.T) {
	doc := NewDocument(map[string]any{"name": "a"})

	require.NoError(t, doc.SetID("doc-1"))
	assert.NoError(t, doc.SetID("doc-1"), "то же значение допустимо")
	assert.ErrorIs(t, doc.SetID("doc-2"), ErrIDImmutable)
	assert.Equal(t, "doc-1", doc.GetID())

	assert.Error(t, NewDocument(nil).SetID(""))
}

func TestDocument_Clone(t *testing.T) {
	doc := NewDocument(map[string]any{
		"name":   "a",
		"nested": map[string]any{"count": 1},
	})
	doc.Init()
	doc.Meta.Users = Users{"bob": {Read: true}}
	doc.GetPulls().UpdatePush(Coordinate{Owner: "o", Branch: "b", ObjectID: doc.ID}, "c1")

	clone, err := doc.Clone()
	require.NoError(t, err)
	assert.Equal(t, doc.ID, clone.ID)
	assert.Equal(t, "c1", clone.GetPulls().GetPushInformation(Coordinate{Owner: "o", Branch: "b", ObjectID: doc.ID}))

	// изменение клона не затрагивает оригинал
	clone.Fields["nested"].(map[string]any)["count"] = 2
	assert.Equal(t, 1, doc.Fields["nested"].(map[string]any)["count"])
}

func TestPermission_Allows(t *testing.T) {
	assert.True(t, Permission{Read: true}.Allows(AccessRead))
	assert.False(t, Permission{Read: true}.Allows(AccessWrite))
	assert.True(t, Permission{Write: true}.Allows(AccessRead))
	assert.False(t, Permission{}.Allows(AccessRead))
}

func TestPath(t *testing.T) {
	assert.Equal(t, "a.b", Path{"a", "b"}.String())
	assert.Equal(t, "/a~1b/c~0", Path{"a/b", "c~"}.Key())
	assert.True(t, Path{"a"}.Overlaps(Path{"a", "b"}))
	assert.True(t, Path{"a", "b"}.Overlaps(Path{"a"}))
	assert.False(t, Path{"a", "b"}.Overlaps(Path{"a", "c"}))
}

func TestCoordinate(t *testing.T) {
	c := Coordinate{Owner: "alice", Branch: "master", ObjectID: "doc/1"}
	assert.Equal(t, "alice/master/doc/1", c.Key())

	parsed, err := ParseCoordinate(c.Key())
	require.NoError(t, err)
	assert.Equal(t, c, parsed)

	_, err = ParseCoordinate("alice")
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestPullState(t *testing.T) {
	state := PullState{}
	c := Coordinate{Owner: "alice", Branch: "master", ObjectID: "1"}

	assert.Empty(t, state.GetPullInformation(c))
	state.UpdatePull(c, "p1")
	state.UpdatePush(c, "s1")
	state.UpdateBase(c, "b1")

	assert.Equal(t, "p1", state.GetPullInformation(c))
	assert.Equal(t, "s1", state.GetPushInformation(c))
	assert.Equal(t, "b1", state.GetBase(c))
}
