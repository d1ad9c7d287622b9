package models

// DayPlan groups the four activities the generator produces for one day.
// Day is 1-based and equals position+1 inside an itinerary.
type DayPlan struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

// MaxItineraryDays caps how far an itinerary can be extended.
const MaxItineraryDays = 7

// ActivitiesPerDay is the contract the generator is prompted to honor.
const ActivitiesPerDay = 4
