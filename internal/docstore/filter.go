package docstore

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"

	"notes-api/internal/storage"
)

// buildNoteFilter translates a storage filter into a BSON query.
// ok is false when the filter can match nothing, such as a malformed id.
func buildNoteFilter(f storage.NoteFilter) (filter bson.D, ok bool) {
	filter = bson.D{}

	if f.ID != "" {
		oid, err := bson.ObjectIDFromHex(f.ID)
		if err != nil {
			return nil, false
		}
		filter = append(filter, bson.E{Key: "_id", Value: oid})
	}
	if f.OwnerID != "" {
		filter = append(filter, bson.E{Key: "userId", Value: f.OwnerID})
	}
	if f.Public != nil {
		filter = append(filter, bson.E{Key: "isPublic", Value: *f.Public})
	}
	if f.Text != "" {
		pattern := bson.Regex{Pattern: regexp.QuoteMeta(f.Text), Options: "i"}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: pattern}},
			bson.D{{Key: "content", Value: pattern}},
			bson.D{{Key: "tags", Value: pattern}},
		}})
	}

	return filter, true
}

func sortDocument(order storage.SortOrder) bson.D {
	switch order {
	case storage.SortNewest:
		return bson.D{{Key: "createdOn", Value: -1}, {Key: "_id", Value: -1}}
	case storage.SortNewestPinned:
		return bson.D{{Key: "createdOn", Value: -1}, {Key: "isPinned", Value: -1}, {Key: "_id", Value: -1}}
	default:
		return bson.D{{Key: "isPinned", Value: -1}, {Key: "createdOn", Value: -1}, {Key: "_id", Value: -1}}
	}
}

// buildNoteUpdate renders a patch as a $set document. updatedAt is always set.
func buildNoteUpdate(p storage.NotePatch) bson.D {
	set := bson.D{}
	if p.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *p.Title})
	}
	if p.Content != nil {
		set = append(set, bson.E{Key: "content", Value: *p.Content})
	}
	if p.Tags != nil {
		tags := *p.Tags
		if tags == nil {
			tags = []string{}
		}
		set = append(set, bson.E{Key: "tags", Value: tags})
	}
	if p.IsPinned != nil {
		set = append(set, bson.E{Key: "isPinned", Value: *p.IsPinned})
	}
	if p.IsPublic != nil {
		set = append(set, bson.E{Key: "isPublic", Value: *p.IsPublic})
	}
	set = append(set, bson.E{Key: "updatedAt", Value: now()})
	return bson.D{{Key: "$set", Value: set}}
}
