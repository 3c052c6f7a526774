package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"notes-api/internal/storage"
)

func TestBuildNoteFilter(t *testing.T) {
	oid := bson.NewObjectID()
	public := true

	t.Run("owner and id", func(t *testing.T) {
		got, ok := buildNoteFilter(storage.NoteFilter{ID: oid.Hex(), OwnerID: "u1"})
		require.True(t, ok)
		assert.Equal(t, bson.D{{Key: "_id", Value: oid}, {Key: "userId", Value: "u1"}}, got)
	})

	t.Run("malformed id matches nothing", func(t *testing.T) {
		_, ok := buildNoteFilter(storage.NoteFilter{ID: "not-hex"})
		assert.False(t, ok)
	})

	t.Run("public flag", func(t *testing.T) {
		got, ok := buildNoteFilter(storage.NoteFilter{OwnerID: "u1", Public: &public})
		require.True(t, ok)
		assert.Equal(t, bson.D{{Key: "userId", Value: "u1"}, {Key: "isPublic", Value: true}}, got)
	})

	t.Run("text is quoted and case-insensitive", func(t *testing.T) {
		got, ok := buildNoteFilter(storage.NoteFilter{Text: "a.b*"})
		require.True(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, "$or", got[0].Key)

		clauses, isArray := got[0].Value.(bson.A)
		require.True(t, isArray)
		require.Len(t, clauses, 3)
		want := bson.Regex{Pattern: `a\.b\*`, Options: "i"}
		for i, field := range []string{"title", "content", "tags"} {
			assert.Equal(t, bson.D{{Key: field, Value: want}}, clauses[i])
		}
	})

	t.Run("empty filter", func(t *testing.T) {
		got, ok := buildNoteFilter(storage.NoteFilter{})
		require.True(t, ok)
		assert.Empty(t, got)
	})
}

func TestSortDocument(t *testing.T) {
	assert.Equal(t, "isPinned", sortDocument(storage.SortPinnedNewest)[0].Key)
	assert.Equal(t, "createdOn", sortDocument(storage.SortNewest)[0].Key)
	assert.Equal(t, bson.D{
		{Key: "createdOn", Value: -1}, {Key: "isPinned", Value: -1}, {Key: "_id", Value: -1},
	}, sortDocument(storage.SortNewestPinned))
}

func TestBuildNoteUpdate(t *testing.T) {
	title := "t"
	pinned := false
	var nilTags []string

	update := buildNoteUpdate(storage.NotePatch{Title: &title, IsPinned: &pinned, Tags: &nilTags})
	require.Len(t, update, 1)
	require.Equal(t, "$set", update[0].Key)

	set, ok := update[0].Value.(bson.D)
	require.True(t, ok)

	keys := make([]string, 0, len(set))
	for _, e := range set {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"title", "tags", "isPinned", "updatedAt"}, keys)
	assert.Equal(t, []string{}, set[1].Value, "nil tags are stored as an empty array")
	assert.Equal(t, false, set[2].Value, "explicit false is kept")
}

func TestNoteDocument_ToNote(t *testing.T) {
	doc := noteDocument{ID: bson.NewObjectID(), Title: "t", UserID: "u1"}
	note := doc.toNote()
	assert.Equal(t, doc.ID.Hex(), note.ID)
	assert.Equal(t, []string{}, note.Tags)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt, "missing updatedAt falls back to createdOn")
}
