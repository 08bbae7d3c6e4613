package schema

// ComicLikeTable represents the 'social.comiclike' table
type ComicLikeTable struct {
	Table     string
	UserID    string
	ComicID   string
	CreatedAt string
}

// ComicLike is the schema definition for social.comiclike
var ComicLike = ComicLikeTable{
	Table:     "social.comiclike",
	UserID:    "userid",
	ComicID:   "comicid",
	CreatedAt: "createdat",
}
