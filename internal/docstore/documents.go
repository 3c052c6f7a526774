package docstore

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"notes-api/internal/storage"
)

type noteDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Title     string        `bson:"title"`
	Content   string        `bson:"content"`
	Tags      []string      `bson:"tags"`
	IsPinned  bool          `bson:"isPinned"`
	IsPublic  bool          `bson:"isPublic"`
	UserID    string        `bson:"userId"`
	CreatedOn time.Time     `bson:"createdOn"`
	UpdatedAt time.Time     `bson:"updatedAt"`
}

func (d noteDocument) toNote() storage.Note {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	updated := d.UpdatedAt
	if updated.IsZero() {
		updated = d.CreatedOn
	}
	return storage.Note{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Content:   d.Content,
		Tags:      tags,
		IsPinned:  d.IsPinned,
		IsPublic:  d.IsPublic,
		OwnerID:   d.UserID,
		CreatedAt: d.CreatedOn.UTC(),
		UpdatedAt: updated.UTC(),
	}
}

type userDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	FullName  string        `bson:"fullName"`
	Email     string        `bson:"email"`
	Password  string        `bson:"password"`
	CreatedOn time.Time     `bson:"createdOn"`
}

func (d userDocument) toUser() storage.User {
	return storage.User{
		ID:           d.ID.Hex(),
		FullName:     d.FullName,
		Email:        d.Email,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedOn.UTC(),
	}
}

// noteWithAuthorDocument is one row of the notes/users $lookup.
type noteWithAuthorDocument struct {
	Note   noteDocument   `bson:",inline"`
	Author []userDocument `bson:"author"`
}
