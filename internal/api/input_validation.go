package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/dojoaonde/internal/services"
)

var dojoDayLayouts = []string{"2006-01-02", "02/01/2006"}

var dojoFormKeys = []string{"local", "day", "address", "city", "limit_people", "info"}

func (handler *Handler) dojoCandidateFromFields(fields formFields) services.DojoCandidate {
	return services.DojoCandidate{
		Local:       fields.value("local"),
		Day:         parseDayValue(fields.value("day"), handler.location),
		Address:     fields.value("address"),
		City:        fields.value("city"),
		LimitPeople: parseLimitPeople(fields.value("limit_people")),
		Info:        fields.value("info"),
	}
}

// parseDayValue returns nil for blank or unparseable input, which the rules
// report as a missing date.
func parseDayValue(raw string, location *time.Location) *time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	if location == nil {
		location = time.UTC
	}
	for _, layout := range dojoDayLayouts {
		if parsed, err := time.ParseInLocation(layout, value, location); err == nil {
			return &parsed
		}
	}
	return nil
}

// parseLimitPeople maps blank to "no limit". Anything that is not a whole number
// becomes 0 so the positive-limit rule rejects it.
func parseLimitPeople(raw string) *int {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		parsed = 0
	}
	return &parsed
}

func parseUserIDParam(raw string) (uint, bool) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}
