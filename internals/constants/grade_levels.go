package constants

// Grade levels accepted from the intake form. Free text historically, so
// values outside this list are kept but flagged at intake validation only.
var GradeLevelOptions = []string{
	"Grade 9", "Grade 10", "Grade 11", "Grade 12",
}

func IsKnownGradeLevel(v string) bool {
	for _, g := range GradeLevelOptions {
		if g == v {
			return true
		}
	}
	return false
}
