package domain

import "time"

// Represents one simulated hiking day.
// A DayPlan records where the day started and ended, the daylight window
// the hiker had at that latitude and date, and how much of it was spent
// moving. It is immutable planning data: the simulator emits each plan
// before looking up the next day's latitude, and never revises it.
type DayPlan struct {
	DayIndex          int
	Date              time.Time
	StartDistanceMiles float64
	EndDistanceMiles   float64
	LatitudeDeg       float64
	SunriseHour       float64
	SunsetHour        float64
	DaylightHours     float64
	AvailableHours    float64
	MovingHours       float64
	AchievedPaceMPH   float64
}

// Miles covered during this day.
func (p DayPlan) Miles() float64 {
	return p.EndDistanceMiles - p.StartDistanceMiles
}
