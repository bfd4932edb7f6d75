package schema

// ReadingNoteTable represents the 'reading.note' table
type ReadingNoteTable struct {
	Table     string
	ID        string
	UserID    string
	EntryID   string
	BookName  string
	Chapter   string
	Content   string
	CreatedAt string
	UpdatedAt string
}

// ReadingNote is the schema definition for reading.note
var ReadingNote = ReadingNoteTable{
	Table:     "reading.note",
	ID:        "id",
	UserID:    "userid",
	EntryID:   "entryid",
	BookName:  "bookname",
	Chapter:   "chapter",
	Content:   "content",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}