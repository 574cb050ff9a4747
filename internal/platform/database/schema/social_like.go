package schema

// SocialLikeTable represents the 'social.like' table
type SocialLikeTable struct {
	Table      string
	ID         string
	LikedBy    string
	TargetKind string
	TargetID   string
	CreatedAt  string
}

// SocialLike is the schema definition for social.like
var SocialLike = SocialLikeTable{
	Table:      `social."like"`,
	ID:         "id",
	LikedBy:    "likedby",
	TargetKind: "targetkind",
	TargetID:   "targetid",
	CreatedAt:  "createdat",
}
