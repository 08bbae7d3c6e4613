package schema

// PendingComicTable represents the 'social.pendingcomic' table
type PendingComicTable struct {
	Table     string
	UserID    string
	ComicID   string
	CreatedAt string
}

// PendingComic is the schema definition for social.pendingcomic
var PendingComic = PendingComicTable{
	Table:     "social.pendingcomic",
	UserID:    "userid",
	ComicID:   "comicid",
	CreatedAt: "createdat",
}
