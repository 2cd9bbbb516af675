// Mood Journal API
//
// REST API for mood check-ins, journaling and wellness insights.
//
//	@title			Mood Journal API
//	@version		1.0
//	@description	Mood check-ins, journaling, wellness insights and reports.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			tracking
//	@tag.description	Mood and BMI check-ins
//
//	@tag.name			journal
//	@tag.description	Journal entries
//
//	@tag.name			insights
//	@tag.description	Analytics and wellness reports
//
//	@tag.name			companion
//	@tag.description	Supportive companion and quick support
//
//	@tag.name			counseling
//	@tag.description	Counseling sessions and the professionals directory
package main

func main() {
	Execute()
}
