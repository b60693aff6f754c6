package utils

import (
	"hotelhub-server/models"
	"hotelhub-server/storage"

	"github.com/kataras/iris/v12"
	jsonWT "github.com/kataras/iris/v12/middleware/jwt"
)

// LogActivity records an action in the staff activity log. The caller's
// staff row is resolved from the access token; non-staff callers are
// ignored silently.
func LogActivity(ctx iris.Context, action string) {
	var userID uint
	if tok := jsonWT.Get(ctx); tok != nil {
		if at, ok := tok.(*AccessToken); ok {
			userID = at.ID
		}
	}
	if userID == 0 {
		return
	}

	var staff models.Staff
	if err := storage.DB.Where("user_id = ?", userID).First(&staff).Error; err != nil {
		return
	}

	entry := models.ActivityLog{StaffID: staff.ID, Action: action}
	storage.DB.Create(&entry)
}
