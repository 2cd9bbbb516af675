package domain

// WellnessScores are the derived 0-100 wellness dimensions.
type WellnessScores struct {
	Physical  int `json:"physical" example:"80"`
	Mental    int `json:"mental" example:"64"`
	Emotional int `json:"emotional" example:"72"`
}

// WellnessTrends are current minus previous-window scores.
type WellnessTrends struct {
	Physical  int `json:"physical" example:"0"`
	Mental    int `json:"mental" example:"5"`
	Emotional int `json:"emotional" example:"-3"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Aggregated wellness insights for a period.
type InsightsResponse struct {
	// Average mood score per bucket, oldest first
	MoodData []float64 `json:"moodData"`
	// Bucket labels matching moodData
	MoodLabels []string `json:"moodLabels"`
	// Average mood per time of day: Morning, Afternoon, Evening, Night
	TimeData []float64 `json:"timeData"`
	// Time of day with the highest average mood
	BestTime string `json:"bestTime" example:"Morning"`
	// Most frequent mood transitions
	MoodTriggers string `json:"moodTriggers" example:"sad → happy (3 times)"`
	// Best and most challenging weekday
	WeeklyPattern string `json:"weeklyPattern" example:"Best on Saturday, Challenging on Monday"`
	// Narrative summary for the period
	MoodInsights string `json:"moodInsights"`

	PhysicalScore  int `json:"physicalScore" example:"80"`
	MentalScore    int `json:"mentalScore" example:"64"`
	EmotionalScore int `json:"emotionalScore" example:"72"`

	PhysicalTrend  int `json:"physicalTrend" example:"0"`
	MentalTrend    int `json:"mentalTrend" example:"5"`
	EmotionalTrend int `json:"emotionalTrend" example:"-3"`

	// Consecutive days with engagement ending today or yesterday
	Streak int `json:"streak" example:"4"`
	// Mood check-ins and journal entries within the period
	TotalEntries int `json:"totalEntries" example:"12"`
	// Emoji for the rounded average of the last 7 check-ins
	AverageMood string `json:"averageMood" example:"😊"`
}

// Scores returns the wellness scores as a struct.
func (r *InsightsResponse) Scores() WellnessScores {
	return WellnessScores{Physical: r.PhysicalScore, Mental: r.MentalScore, Emotional: r.EmotionalScore}
}
