package routes

import (
	"errors"
	"time"

	"hotelhub-server/models"
	"hotelhub-server/storage"
	"hotelhub-server/utils"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CleaningRequestInput struct {
	BookingID   uint   `json:"booking_id" validate:"required"`
	RequestType string `json:"request_type" validate:"required,oneof=room_cleaning towel_change turndown"`
	Notes       string `json:"notes" validate:"max=2000"`
}

func CreateCleaningRequest(ctx iris.Context) {
	var input CleaningRequestInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	userID := ctx.Values().Get("userID").(uint)

	var customer models.Customer
	if err := storage.DB.Where("user_id = ?", userID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Customer profile not found.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	var booking models.Booking
	if err := storage.DB.First(&booking, input.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Booking not found.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	if booking.CustomerID != customer.ID {
		utils.CreateError(iris.StatusForbidden, "Forbidden", "You can only request cleaning for your own bookings.", ctx)
		return
	}

	if booking.Status != models.BookingCheckedIn {
		utils.CreateError(iris.StatusBadRequest, "Cleaning Error", "Cleaning can only be requested during a stay.", ctx)
		return
	}

	request := models.CleaningRequest{
		BookingID:   booking.ID,
		RequestType: input.RequestType,
		Notes:       input.Notes,
		Status:      "pending",
		RequestDate: time.Now(),
	}
	if err := storage.DB.Create(&request).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"message": "Cleaning request submitted", "requestId": request.ID})
}

// GetCleaningRequests scopes the listing by role: cleaning staff see
// their assignments, admins see everything, customers see their own.
func GetCleaningRequests(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	role := ctx.Values().GetStringDefault("userRole", "customer")

	q := storage.DB.Model(&models.CleaningRequest{}).
		Preload("Booking").Preload("Booking.Room")

	switch role {
	case "admin", "receptionist":
		// unfiltered
	case "staff":
		var staff models.Staff
		if err := storage.DB.Where("user_id = ?", userID).First(&staff).Error; err != nil {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Staff record not found.", ctx)
			return
		}
		q = q.Where("staff_id = ?", staff.ID)
	default:
		q = q.Joins("JOIN bookings ON bookings.id = cleaning_requests.booking_id").
			Joins("JOIN customers ON customers.id = bookings.customer_id").
			Where("customers.user_id = ?", userID)
	}

	var requests []models.CleaningRequest
	if err := q.Order("cleaning_requests.created_at DESC").Find(&requests).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(requests)
}

// PATCH /api/admin/cleaning-requests/{id}/assign
func AdminAssignCleaningRequest(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var body struct {
		StaffID uint `json:"staff_id"`
	}
	if err := ctx.ReadJSON(&body); err != nil || body.StaffID == 0 {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_payload", "staff_id required")
		return
	}

	var staff models.Staff
	if err := storage.DB.First(&staff, body.StaffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(ctx, iris.StatusNotFound, "not_found", "staff not found")
			return
		}
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "database error")
		return
	}

	var request models.CleaningRequest
	if err := storage.DB.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(ctx, iris.StatusNotFound, "not_found", "cleaning request not found")
			return
		}
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "database error")
		return
	}

	updates := map[string]interface{}{"staff_id": staff.ID, "status": "assigned"}
	if err := storage.DB.Model(&request).Updates(updates).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "database error")
		return
	}

	utils.LogActivity(ctx, "assigned cleaning request")
	utils.Logger.Info("cleaning request assigned",
		zap.Uint("requestID", request.ID), zap.Uint("staffID", staff.ID))

	ctx.JSON(iris.Map{"message": "Cleaning request assigned"})
}

// PATCH /api/cleaning-requests/{id}/status, cleaning staff move their
// own assignments through the workflow.
func UpdateCleaningRequestStatus(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid request ID.", ctx)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.ReadJSON(&body); err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "status required", ctx)
		return
	}
	switch body.Status {
	case "in_progress", "completed":
	default:
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "status must be in_progress or completed", ctx)
		return
	}

	userID := ctx.Values().Get("userID").(uint)
	role := ctx.Values().GetStringDefault("userRole", "customer")

	var request models.CleaningRequest
	if err := storage.DB.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Cleaning request not found.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	if role != "admin" {
		var staff models.Staff
		if err := storage.DB.Where("user_id = ?", userID).First(&staff).Error; err != nil {
			utils.CreateError(iris.StatusForbidden, "Forbidden", "Staff record not found.", ctx)
			return
		}
		if request.StaffID == nil || *request.StaffID != staff.ID {
			utils.CreateError(iris.StatusForbidden, "Forbidden", "This request is not assigned to you.", ctx)
			return
		}
	}

	if err := storage.DB.Model(&request).Update("status", body.Status).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.LogActivity(ctx, "updated cleaning request status to "+body.Status)

	ctx.JSON(iris.Map{"message": "Cleaning request updated"})
}
