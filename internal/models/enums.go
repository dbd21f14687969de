package models

const (
	ExperienceBeginner     = "BEGINNER"
	ExperienceIntermediate = "INTERMEDIATE"
	ExperienceAdvanced     = "ADVANCED"
	ExperiencePro          = "PRO"
)

var ExperienceLevels = []string{
	ExperienceBeginner,
	ExperienceIntermediate,
	ExperienceAdvanced,
	ExperiencePro,
}

var ModCategories = []string{
	"ENGINE",
	"SUSPENSION",
	"AERO",
	"BRAKES",
	"WHEELS_TIRES",
	"DRIVETRAIN",
	"EXHAUST",
	"INTERIOR",
	"EXTERIOR",
	"ELECTRONICS",
	"OTHER",
}

const (
	TrackStatusPending  = "PENDING"
	TrackStatusApproved = "APPROVED"
	TrackStatusRejected = "REJECTED"
)

// EventTypes is the canonical set. Every input path validates against it.
var EventTypes = []string{"AUTOCROSS", "ROADCOURSE", "DRIFT", "DRAG"}

var DrivingConditions = []string{"DRY", "WET"}

func ValidExperienceLevel(s string) bool { return contains(ExperienceLevels, s) }
func ValidModCategory(s string) bool     { return contains(ModCategories, s) }
func ValidEventType(s string) bool       { return contains(EventTypes, s) }
func ValidCondition(s string) bool       { return contains(DrivingConditions, s) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
