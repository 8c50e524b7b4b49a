package services

import "time"

// DojoCandidate holds the editable Dojo fields as submitted. Day is nil when no
// parseable date was given.
type DojoCandidate struct {
	Local       string
	Day         *time.Time
	Address     string
	City        string
	LimitPeople *int
	Info        string
}

// ValidateDojo checks a candidate against the field rules. A day equal to today (in
// location) is accepted; only strictly earlier days are rejected.
func ValidateDojo(candidate DojoCandidate, now time.Time, location *time.Location) ValidationErrors {
	var errs ValidationErrors

	if isBlank(candidate.Local) {
		errs.add("local", KeyDojoLocalBlank)
	}
	if isBlank(candidate.Address) {
		errs.add("address", KeyDojoAddressBlank)
	}
	if isBlank(candidate.City) {
		errs.add("city", KeyDojoCityBlank)
	}

	if candidate.Day == nil || candidate.Day.IsZero() {
		errs.add("day", KeyDojoDayBlank)
	} else if DateAtLocation(*candidate.Day, location).Before(DateAtLocation(now, location)) {
		errs.add("day", KeyDojoDayPast)
	}

	if candidate.LimitPeople != nil && *candidate.LimitPeople <= 0 {
		errs.add("limit_people", KeyDojoLimitPeopleInvalid)
	}
	return errs
}
