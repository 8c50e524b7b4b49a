package services

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/dojoaonde/internal/models"
)

type DojoEditPolicy string

const (
	// DojoEditAnyUser lets every authenticated user edit or delete any dojo.
	DojoEditAnyUser DojoEditPolicy = "any"
	// DojoEditOwnerOnly restricts edit and delete to the user who created the dojo.
	DojoEditOwnerOnly DojoEditPolicy = "owner"
)

func ParseDojoEditPolicy(raw string) (DojoEditPolicy, error) {
	switch DojoEditPolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", DojoEditAnyUser:
		return DojoEditAnyUser, nil
	case DojoEditOwnerOnly:
		return DojoEditOwnerOnly, nil
	default:
		return "", fmt.Errorf("unknown dojo edit policy %q", raw)
	}
}

func IsAuthenticated(viewer *models.User) bool {
	return viewer != nil && viewer.ID != 0
}

func CanEditUser(viewer *models.User, targetUserID uint) bool {
	return IsAuthenticated(viewer) && viewer.ID == targetUserID
}

// ResolveEditableUserID maps a requested profile to the one the viewer may edit,
// which is always their own. ok is false for anonymous viewers.
func ResolveEditableUserID(viewer *models.User, requestedUserID uint) (userID uint, ok bool) {
	if !IsAuthenticated(viewer) {
		return 0, false
	}
	return viewer.ID, true
}

func CanManageDojo(viewer *models.User) bool {
	return IsAuthenticated(viewer)
}

func (policy DojoEditPolicy) CanModifyDojo(viewer *models.User, dojo models.Dojo) bool {
	if !CanManageDojo(viewer) {
		return false
	}
	if policy == DojoEditOwnerOnly {
		return dojo.UserID == viewer.ID
	}
	return true
}
