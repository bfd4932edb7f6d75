package schema

// ReadingStreakTable represents the 'reading.streak' table
type ReadingStreakTable struct {
	Table           string
	UserID          string
	CurrentStreak   string
	LongestStreak   string
	LastReadingDate string
	UpdatedAt       string
}

// ReadingStreak is the schema definition for reading.streak
var ReadingStreak = ReadingStreakTable{
	Table:           "reading.streak",
	UserID:          "userid",
	CurrentStreak:   "currentstreak",
	LongestStreak:   "longeststreak",
	LastReadingDate: "lastreadingdate",
	UpdatedAt:       "updatedat",
}