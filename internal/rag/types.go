package rag

import "notes-api/internal/storage"

// Hit is one note returned by a semantic search.
type Hit struct {
	Note  storage.Note
	Score float32
}

// AskRequest asks a question against one user's public notes.
type AskRequest struct {
	// OwnerID is the user whose public notes form the context.
	OwnerID string
	// Question is the question to answer.
	Question string
}

// Source is a note that was given to the model as context.
type Source struct {
	NoteID string  `json:"noteId"`
	Title  string  `json:"title"`
	Score  float32 `json:"score"`
}

// AskResponse is the generated answer and the notes it was based on.
type AskResponse struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources"`
}
