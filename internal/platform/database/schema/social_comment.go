package schema

// CommentTable represents the 'social.comment' table
type CommentTable struct {
	Table     string
	ID        string
	ComicID   string
	UserID    string
	Text      string
	Rating    string
	CreatedAt string
	UpdatedAt string
}

// Comment is the schema definition for social.comment
var Comment = CommentTable{
	Table:     "social.comment",
	ID:        "id",
	ComicID:   "comicid",
	UserID:    "userid",
	Text:      "text",
	Rating:    "rating",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t CommentTable) Columns() []string {
	return []string{
		t.ID, t.ComicID, t.UserID, t.Text, t.Rating, t.CreatedAt, t.UpdatedAt,
	}
}
