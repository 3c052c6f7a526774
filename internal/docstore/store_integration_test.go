package docstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"notes-api/internal/storage"
)

// testDatabase connects to MONGO_TEST_URI and returns a throwaway database.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := Connect(ctx, uri)
	require.NoError(t, err)

	db := client.Database("notes_test_" + bson.NewObjectID().Hex())
	require.NoError(t, EnsureIndexes(ctx, db))

	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}

func TestNoteRepo_Integration(t *testing.T) {
	db := testDatabase(t)
	repo := NewNoteRepo(db)
	ctx := context.Background()

	note := &storage.Note{Title: "Grocery List", Content: "milk", OwnerID: "alice"}
	require.NoError(t, repo.Insert(ctx, note))
	require.NotEmpty(t, note.ID)

	_, err := repo.FindOne(ctx, storage.NoteFilter{ID: note.ID, OwnerID: "bob"})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	got, err := repo.FindOne(ctx, storage.NoteFilter{ID: note.ID, OwnerID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "Grocery List", got.Title)
	assert.Equal(t, []string{}, got.Tags)

	notes, total, err := repo.FindMany(ctx, storage.NoteFilter{OwnerID: "alice", Text: "GROCERY"}, storage.FindOptions{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, notes, 1)

	toggled, err := repo.TogglePin(ctx, storage.NoteFilter{ID: note.ID, OwnerID: "alice"})
	require.NoError(t, err)
	assert.True(t, toggled.IsPinned)
	toggled, err = repo.TogglePin(ctx, storage.NoteFilter{ID: note.ID, OwnerID: "alice"})
	require.NoError(t, err)
	assert.False(t, toggled.IsPinned)

	tags := []string{"a", "b"}
	updated, err := repo.Update(ctx, storage.NoteFilter{ID: note.ID, OwnerID: "alice"}, storage.NotePatch{Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, tags, updated.Tags)
	assert.Equal(t, "milk", updated.Content)

	assert.ErrorIs(t, repo.Delete(ctx, storage.NoteFilter{ID: note.ID, OwnerID: "bob"}), storage.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, storage.NoteFilter{ID: note.ID, OwnerID: "alice"}))
}

func TestUserRepo_Integration(t *testing.T) {
	db := testDatabase(t)
	users := NewUserRepo(db)
	notes := NewNoteRepo(db)
	ctx := context.Background()

	alice := &storage.User{FullName: "Alice", Email: "alice@example.com", PasswordHash: "h"}
	require.NoError(t, users.Insert(ctx, alice))
	assert.ErrorIs(t, users.Insert(ctx, &storage.User{Email: "alice@example.com", PasswordHash: "h"}), storage.ErrDuplicate)

	got, err := users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	_, err = users.FindByID(ctx, "bad-id")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, notes.Insert(ctx, &storage.Note{Title: "t", Content: "c", OwnerID: alice.ID}))
	joined, err := notes.ListWithAuthors(ctx)
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.Equal(t, "Alice", joined[0].AuthorName)
}
