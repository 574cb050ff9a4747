package schema

// SocialTweetTable represents the 'social.tweet' table
type SocialTweetTable struct {
	Table     string
	ID        string
	Content   string
	OwnerID   string
	CreatedAt string
	UpdatedAt string
}

// SocialTweet is the schema definition for social.tweet
var SocialTweet = SocialTweetTable{
	Table:     "social.tweet",
	ID:        "id",
	Content:   "content",
	OwnerID:   "ownerid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t SocialTweetTable) Columns() []string {
	return []string{t.ID, t.Content, t.OwnerID, t.CreatedAt, t.UpdatedAt}
}
