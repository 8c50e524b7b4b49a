package api

import (
	"fmt"

	"github.com/terraincognita07/dojoaonde/internal/models"
	"github.com/terraincognita07/dojoaonde/internal/services"
)

const dayLayout = "2006-01-02"

type userView struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	EditPath     string `json:"edit_path"`
	PasswordPath string `json:"password_path"`
}

type dojoView struct {
	ID          uint   `json:"id"`
	Path        string `json:"path"`
	Local       string `json:"local"`
	Day         string `json:"day"`
	Address     string `json:"address"`
	City        string `json:"city"`
	LimitPeople *int   `json:"limit_people,omitempty"`
	Info        string `json:"info,omitempty"`
	Owner       string `json:"owner,omitempty"`
	CanModify   bool   `json:"can_modify"`
	EditPath    string `json:"edit_path,omitempty"`
	DeletePath  string `json:"delete_path,omitempty"`
}

func buildUserView(user models.User) userView {
	return userView{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		EditPath:     userEditPath(user.ID),
		PasswordPath: userPasswordEditPath(user.ID),
	}
}

func buildDojoView(dojo models.Dojo, viewer *models.User, policy services.DojoEditPolicy) dojoView {
	view := dojoView{
		ID:          dojo.ID,
		Path:        services.DojoPath(dojo),
		Local:       dojo.Local,
		Address:     dojo.Address,
		City:        dojo.City,
		LimitPeople: dojo.LimitPeople,
		Info:        dojo.Info,
	}
	if !dojo.Day.IsZero() {
		view.Day = dojo.Day.Format(dayLayout)
	}
	if dojo.User != nil {
		view.Owner = dojo.User.Name
	}
	if policy.CanModifyDojo(viewer, dojo) {
		view.CanModify = true
		view.EditPath = dojoEditPath(dojo.ID)
		view.DeletePath = dojoDeletePath(dojo.ID)
	}
	return view
}

func buildDojoViews(dojos []models.Dojo, viewer *models.User, policy services.DojoEditPolicy) []dojoView {
	views := make([]dojoView, 0, len(dojos))
	for _, dojo := range dojos {
		views = append(views, buildDojoView(dojo, viewer, policy))
	}
	return views
}

func userEditPath(userID uint) string {
	return fmt.Sprintf("/users/%d/edit", userID)
}

func userPasswordEditPath(userID uint) string {
	return fmt.Sprintf("/users/%d/password/edit", userID)
}

func dojoEditPath(dojoID uint) string {
	return fmt.Sprintf("/dojos/%d/edit", dojoID)
}

func dojoDeletePath(dojoID uint) string {
	return fmt.Sprintf("/dojos/%d/delete", dojoID)
}
