package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"notes-api/internal/storage"
)

// NoteRepo is the MongoDB storage.NoteStore.
type NoteRepo struct {
	db    *mongo.Database
	notes *mongo.Collection
}

var _ storage.NoteStore = (*NoteRepo)(nil)

// NewNoteRepo creates a NoteRepo over db.
func NewNoteRepo(db *mongo.Database) *NoteRepo {
	return &NoteRepo{db: db, notes: db.Collection(notesCollection)}
}

// Insert persists a new note.
func (r *NoteRepo) Insert(ctx context.Context, note *storage.Note) error {
	ts := now()
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}

	doc := noteDocument{
		ID:        bson.NewObjectID(),
		Title:     note.Title,
		Content:   note.Content,
		Tags:      tags,
		IsPinned:  note.IsPinned,
		IsPublic:  note.IsPublic,
		UserID:    note.OwnerID,
		CreatedOn: ts,
		UpdatedAt: ts,
	}
	if _, err := r.notes.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}

	note.ID = doc.ID.Hex()
	note.Tags = tags
	note.CreatedAt = ts
	note.UpdatedAt = ts
	return nil
}

// FindOne returns the first note matching filter.
func (r *NoteRepo) FindOne(ctx context.Context, filter storage.NoteFilter) (*storage.Note, error) {
	query, ok := buildNoteFilter(filter)
	if !ok {
		return nil, storage.ErrNotFound
	}

	var doc noteDocument
	err := r.notes.FindOne(ctx, query).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query note: %w", err)
	}

	note := doc.toNote()
	return &note, nil
}

// FindMany returns one page of matching notes and the total number of matches.
func (r *NoteRepo) FindMany(ctx context.Context, filter storage.NoteFilter, opts storage.FindOptions) ([]storage.Note, int, error) {
	query, ok := buildNoteFilter(filter)
	if !ok {
		return []storage.Note{}, 0, nil
	}

	total, err := r.notes.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notes: %w", err)
	}

	findOpts := options.Find().SetSort(sortDocument(opts.Sort))
	if opts.Skip > 0 {
		findOpts.SetSkip(int64(opts.Skip))
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}

	cursor, err := r.notes.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query notes: %w", err)
	}

	var docs []noteDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode notes: %w", err)
	}

	notes := make([]storage.Note, 0, len(docs))
	for _, doc := range docs {
		notes = append(notes, doc.toNote())
	}
	return notes, int(total), nil
}

// Update applies patch to the matching note with a single findOneAndUpdate.
func (r *NoteRepo) Update(ctx context.Context, filter storage.NoteFilter, patch storage.NotePatch) (*storage.Note, error) {
	return r.findOneAndUpdate(ctx, filter, buildNoteUpdate(patch))
}

// TogglePin negates isPinned with an update pipeline so the read and the
// write happen in one server-side operation.
func (r *NoteRepo) TogglePin(ctx context.Context, filter storage.NoteFilter) (*storage.Note, error) {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "isPinned", Value: bson.D{{Key: "$not", Value: bson.A{"$isPinned"}}}},
			{Key: "updatedAt", Value: now()},
		}}},
	}
	return r.findOneAndUpdate(ctx, filter, update)
}

func (r *NoteRepo) findOneAndUpdate(ctx context.Context, filter storage.NoteFilter, update any) (*storage.Note, error) {
	if filter.ID == "" {
		return nil, fmt.Errorf("update requires a note id")
	}
	query, ok := buildNoteFilter(filter)
	if !ok {
		return nil, storage.ErrNotFound
	}

	var doc noteDocument
	err := r.notes.FindOneAndUpdate(ctx, query, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	note := doc.toNote()
	return &note, nil
}

// Delete removes the matching note.
func (r *NoteRepo) Delete(ctx context.Context, filter storage.NoteFilter) error {
	if filter.ID == "" {
		return fmt.Errorf("delete requires a note id")
	}
	query, ok := buildNoteFilter(filter)
	if !ok {
		return storage.ErrNotFound
	}

	res, err := r.notes.DeleteOne(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListWithAuthors joins every note with its author through $lookup.
// userId is stored as the hex form of the user's ObjectID.
func (r *NoteRepo) ListWithAuthors(ctx context.Context) ([]storage.NoteWithAuthor, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: sortDocument(storage.SortNewestPinned)}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "let", Value: bson.D{{Key: "uid", Value: "$userId"}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
					{Key: "$eq", Value: bson.A{bson.D{{Key: "$toString", Value: "$_id"}}, "$$uid"}},
				}}}}},
				bson.D{{Key: "$project", Value: bson.D{{Key: "fullName", Value: 1}, {Key: "email", Value: 1}}}},
			}},
			{Key: "as", Value: "author"},
		}}},
	}

	cursor, err := r.notes.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate notes with authors: %w", err)
	}

	var docs []noteWithAuthorDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode notes with authors: %w", err)
	}

	result := make([]storage.NoteWithAuthor, 0, len(docs))
	for _, doc := range docs {
		item := storage.NoteWithAuthor{Note: doc.Note.toNote()}
		if len(doc.Author) > 0 {
			item.AuthorName = doc.Author[0].FullName
			item.AuthorEmail = doc.Author[0].Email
		}
		result = append(result, item)
	}
	return result, nil
}

// Ping checks the server connection.
func (r *NoteRepo) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}
