package routes

import (
	"errors"
	"strconv"
	"time"

	"hotelhub-server/models"
	"hotelhub-server/storage"
	"hotelhub-server/utils"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GET /api/admin/dashboard
func AdminDashboard(ctx iris.Context) {
	db := storage.DB

	var totalRooms, occupiedRooms, totalCustomers, totalStaff int64
	db.Model(&models.Room{}).Count(&totalRooms)
	db.Model(&models.Room{}).Where("status = ?", models.RoomOccupied).Count(&occupiedRooms)
	db.Model(&models.Customer{}).Count(&totalCustomers)
	db.Model(&models.Staff{}).Count(&totalStaff)

	var activeBookings, pendingCleaning int64
	db.Model(&models.Booking{}).
		Where("booking_status IN ?", []models.BookingStatus{models.BookingConfirmed, models.BookingCheckedIn}).
		Count(&activeBookings)
	db.Model(&models.CleaningRequest{}).Where("status = ?", "pending").Count(&pendingCleaning)

	var monthRevenue float64
	monthStart := time.Now().UTC().Truncate(24 * time.Hour)
	monthStart = time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, time.UTC)
	db.Model(&models.Transaction{}).
		Where("payment_status = ? AND created_at >= ?", "completed", monthStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthRevenue)

	occupancyRate := 0.0
	if totalRooms > 0 {
		occupancyRate = float64(occupiedRooms) / float64(totalRooms) * 100
	}

	ctx.JSON(iris.Map{
		"totalRooms":      totalRooms,
		"occupiedRooms":   occupiedRooms,
		"occupancyRate":   occupancyRate,
		"totalCustomers":  totalCustomers,
		"totalStaff":      totalStaff,
		"activeBookings":  activeBookings,
		"pendingCleaning": pendingCleaning,
		"monthRevenue":    monthRevenue,
	})
}

// GET /api/admin/reports/monthly?year=2026&month=8
func AdminMonthlyReport(ctx iris.Context) {
	now := time.Now().UTC()
	year, err := strconv.Atoi(ctx.URLParamDefault("year", strconv.Itoa(now.Year())))
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_query", "invalid year")
		return
	}
	month, err := strconv.Atoi(ctx.URLParamDefault("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_query", "invalid month")
		return
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	db := storage.DB

	var bookingsCreated, bookingsCancelled int64
	db.Model(&models.Booking{}).Where("created_at >= ? AND created_at < ?", from, to).Count(&bookingsCreated)
	db.Model(&models.Booking{}).
		Where("booking_status = ? AND updated_at >= ? AND updated_at < ?", models.BookingCancelled, from, to).
		Count(&bookingsCancelled)

	var revenue float64
	db.Model(&models.Transaction{}).
		Where("payment_status = ? AND created_at >= ? AND created_at < ?", "completed", from, to).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue)

	var nightsSold int64
	db.Model(&models.Booking{}).
		Where("booking_status IN ? AND check_in_date < ? AND check_out_date > ?",
			[]models.BookingStatus{models.BookingConfirmed, models.BookingCheckedIn, models.BookingCheckedOut},
			to, from).
		Select("COALESCE(SUM(GREATEST(1, LEAST(check_out_date, ?::date) - GREATEST(check_in_date, ?::date))), 0)", to, from).
		Scan(&nightsSold)

	ctx.JSON(iris.Map{
		"year":              year,
		"month":             month,
		"bookingsCreated":   bookingsCreated,
		"bookingsCancelled": bookingsCancelled,
		"revenue":           revenue,
		"nightsSold":        nightsSold,
	})
}

// GET /api/admin/users
func AdminListUsers(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 20)
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := storage.DB.Model(&models.User{})
	if role := ctx.URLParamDefault("role", ""); role != "" {
		q = q.Where("role = ?", role)
	}

	var total int64
	q.Count(&total)

	var users []models.User
	if err := q.Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&users).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "database error")
		return
	}

	utils.JSONPage(ctx, users, page, perPage, total)
}

// GET /api/admin/customers
func AdminListCustomers(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 20)
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var total int64
	storage.DB.Model(&models.Customer{}).Count(&total)

	var customers []models.Customer
	if err := storage.DB.Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&customers).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "database error")
		return
	}

	utils.JSONPage(ctx, customers, page, perPage, total)
}

// GET /api/admin/staff
func AdminListStaff(ctx iris.Context) {
	var staff []models.Staff
	if err := storage.DB.Preload("User").Order("hire_date").Find(&staff).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "database error")
		return
	}
	ctx.JSON(staff)
}

type RoomInput struct {
	RoomNumber    int      `json:"room_number" validate:"required"`
	RoomTypeID    uint     `json:"room_type_id" validate:"required"`
	Floor         int      `json:"floor" validate:"required"`
	PricePerNight *float64 `json:"price_per_night" validate:"omitempty,gt=0"`
}

// POST /api/admin/rooms
func AdminCreateRoom(ctx iris.Context) {
	var input RoomInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var roomType models.RoomType
	if err := storage.DB.First(&roomType, input.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(ctx, iris.StatusNotFound, "not_found", "room type not found")
			return
		}
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "database error")
		return
	}

	var duplicate int64
	storage.DB.Model(&models.Room{}).Where("room_number = ?", input.RoomNumber).Count(&duplicate)
	if duplicate > 0 {
		utils.JSONError(ctx, iris.StatusBadRequest, "duplicate_room", "room number already exists")
		return
	}

	room := models.Room{
		RoomNumber:    input.RoomNumber,
		RoomTypeID:    input.RoomTypeID,
		Floor:         input.Floor,
		PricePerNight: input.PricePerNight,
		Status:        models.RoomAvailable,
	}
	if err := storage.DB.Create(&room).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "database error")
		return
	}

	utils.LogActivity(ctx, "created room")
	utils.Logger.Info("room created", zap.Uint("roomID", room.ID), zap.Int("roomNumber", room.RoomNumber))

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(room)
}

type RoomTypeInput struct {
	Name         string  `json:"name" validate:"required,max=256"`
	Description  string  `json:"description" validate:"max=2000"`
	BasePrice    float64 `json:"base_price" validate:"required,gt=0"`
	MaxOccupancy int     `json:"max_occupancy" validate:"required,min=1"`
}

// POST /api/admin/room-types
func AdminCreateRoomType(ctx iris.Context) {
	var input RoomTypeInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	roomType := models.RoomType{
		Name:         input.Name,
		Description:  input.Description,
		BasePrice:    input.BasePrice,
		MaxOccupancy: input.MaxOccupancy,
	}
	if err := storage.DB.Create(&roomType).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "database error")
		return
	}

	utils.LogActivity(ctx, "created room type")

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(roomType)
}

// PATCH /api/admin/rooms/{id}/price
func AdminUpdateRoomPrice(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var body struct {
		PricePerNight *float64 `json:"price_per_night"`
	}
	if err := ctx.ReadJSON(&body); err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_payload", "invalid payload")
		return
	}
	if body.PricePerNight != nil && *body.PricePerNight <= 0 {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_payload", "price_per_night must be positive")
		return
	}

	var room models.Room
	if err := storage.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(ctx, iris.StatusNotFound, "not_found", "room not found")
			return
		}
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "database error")
		return
	}

	// A null price clears the override, so the type's base price applies.
	if err := storage.DB.Model(&room).Update("price_per_night", body.PricePerNight).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "database error")
		return
	}

	utils.LogActivity(ctx, "updated room price")

	ctx.JSON(iris.Map{"message": "Room price updated"})
}

type ActivityLogInput struct {
	Action string `json:"action" validate:"required,max=512"`
}

// POST /api/activity-log, staff record their own actions.
func PostActivityLog(ctx iris.Context) {
	var input ActivityLogInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	utils.LogActivity(ctx, input.Action)

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"message": "Activity logged"})
}

// GET /api/admin/activity-log
func AdminActivityLog(ctx iris.Context) {
	var entries []models.ActivityLog
	if err := storage.DB.Preload("Staff").Preload("Staff.User").
		Order("created_at DESC").Limit(200).Find(&entries).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "database error")
		return
	}
	ctx.JSON(entries)
}
