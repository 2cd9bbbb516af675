package domain

// DashboardResponse is the at-a-glance summary of a user's recent activity.
// @Description Streak, average mood, common emotions and latest journal entries.
type DashboardResponse struct {
	// Stored companion exchanges
	TotalConversations int `json:"totalConversations" example:"14"`
	// Emoji for the rounded average mood of the last 7 days
	AverageMood string `json:"averageMood" example:"😊"`
	Streak      int    `json:"streak" example:"4"`
	// Up to five most frequent moods of all time
	CommonEmotions []MoodShare `json:"commonEmotions"`
	// Most frequent mood transitions of all time
	Triggers string `json:"triggers" example:"anxious → calm (2 times)"`
	// Five latest journal entries, oldest first
	JournalEntries []JournalEntryResponse `json:"journalEntries"`
}
