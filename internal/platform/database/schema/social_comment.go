package schema

// SocialCommentTable represents the 'social.comment' table
type SocialCommentTable struct {
	Table     string
	ID        string
	Content   string
	VideoID   string
	OwnerID   string
	CreatedAt string
	UpdatedAt string
}

// SocialComment is the schema definition for social.comment
var SocialComment = SocialCommentTable{
	Table:     "social.comment",
	ID:        "id",
	Content:   "content",
	VideoID:   "videoid",
	OwnerID:   "ownerid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t SocialCommentTable) Columns() []string {
	return []string{t.ID, t.Content, t.VideoID, t.OwnerID, t.CreatedAt, t.UpdatedAt}
}
