package schema

// CoreVideoTable represents the 'core.video' table
type CoreVideoTable struct {
	Table       string
	ID          string
	OwnerID     string
	VideoFile   string
	Thumbnail   string
	Title       string
	Description string
	Duration    string
	Views       string
	IsPublished string
	CreatedAt   string
	UpdatedAt   string
}

// CoreVideo is the schema definition for core.video
var CoreVideo = CoreVideoTable{
	Table:       "core.video",
	ID:          "id",
	OwnerID:     "ownerid",
	VideoFile:   "videofile",
	Thumbnail:   "thumbnail",
	Title:       "title",
	Description: "description",
	Duration:    "duration",
	Views:       "views",
	IsPublished: "ispublished",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t CoreVideoTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.VideoFile, t.Thumbnail, t.Title, t.Description,
		t.Duration, t.Views, t.IsPublished, t.CreatedAt, t.UpdatedAt,
	}
}
