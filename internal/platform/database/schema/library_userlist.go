package schema

// UserListTable represents the 'library.userlist' table
type UserListTable struct {
	Table     string
	ID        string
	UserID    string
	Name      string
	Type      string
	CreatedAt string
}

// UserList is the schema definition for library.userlist
var UserList = UserListTable{
	Table:     "library.userlist",
	ID:        "id",
	UserID:    "userid",
	Name:      "name",
	Type:      "type",
	CreatedAt: "createdat",
}
