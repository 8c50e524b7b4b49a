package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"github.com/terraincognita07/dojoaonde/internal/models"
)

const dojoDayLayout = "2006-01-02"

func DojoSlug(dojo models.Dojo) string {
	parts := make([]string, 0, 2)
	if local := strings.TrimSpace(dojo.Local); local != "" {
		parts = append(parts, local)
	}
	if !dojo.Day.IsZero() {
		parts = append(parts, dojo.Day.Format(dojoDayLayout))
	}
	return slug.Make(strings.Join(parts, " "))
}

// DojoPath builds "/dojos/<id>-<slug>"; the slug part is decorative.
func DojoPath(dojo models.Dojo) string {
	if dojoSlug := DojoSlug(dojo); dojoSlug != "" {
		return fmt.Sprintf("/dojos/%d-%s", dojo.ID, dojoSlug)
	}
	return fmt.Sprintf("/dojos/%d", dojo.ID)
}

// ParseDojoID accepts both "12" and "12-some-slug".
func ParseDojoID(param string) (uint, bool) {
	raw := strings.TrimSpace(param)
	if separator := strings.Index(raw, "-"); separator >= 0 {
		raw = raw[:separator]
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}
