package schema

// UserListComicTable represents the 'library.userlistcomic' table
type UserListComicTable struct {
	Table   string
	ListID  string
	ComicID string
	AddedAt string
}

// UserListComic is the schema definition for library.userlistcomic
var UserListComic = UserListComicTable{
	Table:   "library.userlistcomic",
	ListID:  "listid",
	ComicID: "comicid",
	AddedAt: "addedat",
}
