package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table            string
	ID               string
	Username         string
	Email            string
	FullName         string
	Password         string
	Avatar           string
	CoverImage       string
	RefreshTokenHash string
	WatchHistory     string
	CreatedAt        string
	UpdatedAt        string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:            "users.account",
	ID:               "id",
	Username:         "username",
	Email:            "email",
	FullName:         "fullname",
	Password:         "passwordhash",
	Avatar:           "avatar",
	CoverImage:       "coverimage",
	RefreshTokenHash: "refreshtokenhash",
	WatchHistory:     "watchhistory",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

// Columns returns the columns of a sanitized account (no secrets, no history)
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.FullName, t.Avatar, t.CoverImage,
		t.CreatedAt, t.UpdatedAt,
	}
}
