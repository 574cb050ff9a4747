package schema

// SocialPlaylistTable represents the 'social.playlist' table
type SocialPlaylistTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	OwnerID     string
	VideoIDs    string
	CreatedAt   string
	UpdatedAt   string
}

// SocialPlaylist is the schema definition for social.playlist
var SocialPlaylist = SocialPlaylistTable{
	Table:       "social.playlist",
	ID:          "id",
	Name:        "name",
	Description: "description",
	OwnerID:     "ownerid",
	VideoIDs:    "videoids",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t SocialPlaylistTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.OwnerID, t.VideoIDs, t.CreatedAt, t.UpdatedAt}
}
