package schema

// ReadingProgressTable represents the 'reading.progress' table
type ReadingProgressTable struct {
	Table         string
	ID            string
	UserID        string
	ReadingDate   string
	BookName      string
	StartChapter  string
	EndChapter    string
	StartVerse    string
	EndVerse      string
	ChaptersCount string
	CreatedAt     string
}

// ReadingProgress is the schema definition for reading.progress
var ReadingProgress = ReadingProgressTable{
	Table:         "reading.progress",
	ID:            "id",
	UserID:        "userid",
	ReadingDate:   "readingdate",
	BookName:      "bookname",
	StartChapter:  "startchapter",
	EndChapter:    "endchapter",
	StartVerse:    "startverse",
	EndVerse:      "endverse",
	ChaptersCount: "chapterscount",
	CreatedAt:     "createdat",
}

// Columns returns all standard column names
func (t ReadingProgressTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.ReadingDate, t.BookName, t.StartChapter,
		t.EndChapter, t.StartVerse, t.EndVerse, t.ChaptersCount, t.CreatedAt,
	}
}