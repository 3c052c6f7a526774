package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"notes-api/internal/storage"
)

// UserRepo is the MongoDB storage.UserStore. Email uniqueness relies on
// the index created by EnsureIndexes.
type UserRepo struct {
	users *mongo.Collection
}

var _ storage.UserStore = (*UserRepo)(nil)

// NewUserRepo creates a UserRepo over db.
func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{users: db.Collection(usersCollection)}
}

// Insert persists a new user.
func (r *UserRepo) Insert(ctx context.Context, user *storage.User) error {
	doc := userDocument{
		ID:        bson.NewObjectID(),
		FullName:  user.FullName,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedOn: now(),
	}

	_, err := r.users.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return storage.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	user.ID = doc.ID.Hex()
	user.CreatedAt = doc.CreatedOn
	return nil
}

// FindByID gets a user by id. Malformed ids are reported as not found.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*storage.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, storage.ErrNotFound
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

// FindByEmail gets a user by exact email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*storage.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.D) (*storage.User, error) {
	var doc userDocument
	err := r.users.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	user := doc.toUser()
	return &user, nil
}

// List returns all users, oldest first.
func (r *UserRepo) List(ctx context.Context) ([]storage.User, error) {
	cursor, err := r.users.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdOn", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	users := make([]storage.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toUser())
	}
	return users, nil
}
