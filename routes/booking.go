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
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

var (
	errRoomNotFound  = errors.New("room not found")
	errDatesConflict = errors.New("room not available for selected dates")
	errGuestLimit    = errors.New("guest count exceeds room capacity")
)

type BookingInput struct {
	RoomID          uint   `json:"room_id" validate:"required"`
	CheckInDate     string `json:"check_in_date" validate:"required"`
	CheckOutDate    string `json:"check_out_date" validate:"required"`
	Guests          int    `json:"guests" validate:"omitempty,min=1"`
	SpecialRequests string `json:"special_requests"`
}

func CreateBooking(ctx iris.Context) {
	var input BookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	checkIn, err := time.Parse(dateLayout, input.CheckInDate)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid check_in_date, expected YYYY-MM-DD.", ctx)
		return
	}
	checkOut, err := time.Parse(dateLayout, input.CheckOutDate)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid check_out_date, expected YYYY-MM-DD.", ctx)
		return
	}
	if checkOut.Before(checkIn) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "check_out_date must not be before check_in_date.", ctx)
		return
	}
	if input.Guests == 0 {
		input.Guests = 1
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

	booking, bookErr := placeBooking(storage.DB, customer.ID, input.RoomID, checkIn, checkOut, input.Guests, input.SpecialRequests)
	if bookErr != nil {
		switch {
		case errors.Is(bookErr, errRoomNotFound):
			utils.CreateError(iris.StatusNotFound, "Not Found", "Room not found.", ctx)
		case errors.Is(bookErr, errDatesConflict):
			utils.CreateError(iris.StatusBadRequest, "Booking Error", "Room not available for selected dates.", ctx)
		case errors.Is(bookErr, errGuestLimit):
			utils.CreateError(iris.StatusBadRequest, "Booking Error", "Guest count exceeds the room's maximum occupancy.", ctx)
		default:
			utils.Logger.Error("failed to create booking", zap.Error(bookErr), zap.Uint("roomID", input.RoomID))
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	utils.Logger.Info("booking created",
		zap.Uint("bookingID", booking.ID),
		zap.Uint("roomID", booking.RoomID),
		zap.Float64("totalAmount", booking.TotalAmount),
	)

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message":     "Booking created",
		"bookingId":   booking.ID,
		"totalAmount": booking.TotalAmount,
	})
}

// placeBooking runs the conflict check, pricing and state transition in a
// single transaction. The room row is locked up front, so concurrent
// requests for the same room serialize on the lock and the conflict scan
// always sees the latest committed bookings: at most one of two racing
// requests for overlapping dates can succeed.
func placeBooking(db *gorm.DB, customerID, roomID uint, checkIn, checkOut time.Time, guests int, specialRequests string) (*models.Booking, error) {
	var booking models.Booking

	err := db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errRoomNotFound
			}
			return err
		}
		if err := tx.First(&room.RoomType, room.RoomTypeID).Error; err != nil {
			return err
		}

		if room.RoomType.MaxOccupancy > 0 && guests > room.RoomType.MaxOccupancy {
			return errGuestLimit
		}

		// Half-open overlap: [a,b) and [c,d) conflict iff NOT (b <= c OR a >= d).
		var conflicts int64
		blocking := []models.BookingStatus{models.BookingConfirmed, models.BookingCheckedIn}
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND booking_status IN ? AND NOT (check_out_date <= ? OR check_in_date >= ?)",
				roomID, blocking, checkIn, checkOut).
			Count(&conflicts).Error; err != nil {
			return err
		}
		if conflicts > 0 {
			return errDatesConflict
		}

		nights := nightsBetween(checkIn, checkOut)
		total := room.EffectivePrice() * float64(nights)

		booking = models.Booking{
			CustomerID:      customerID,
			RoomID:          roomID,
			Status:          models.BookingUnpaid,
			CheckInDate:     checkIn,
			CheckOutDate:    checkOut,
			Guests:          guests,
			TotalAmount:     total,
			SpecialRequests: specialRequests,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		return tx.Model(&models.Room{}).Where("id = ?", roomID).
			Update("status", models.RoomOccupied).Error
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// nightsBetween counts nights in the half-open range [checkIn, checkOut),
// floored to one night when the two dates coincide.
func nightsBetween(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// rangesOverlap reports whether [aStart,aEnd) and [bStart,bEnd) share a
// night. The checkout day itself is not counted as occupied.
func rangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aEnd.After(bStart) && aStart.Before(bEnd)
}

// GetRoomAvailability is a read-only probe over the same predicate the
// booking transaction uses. Probing never reserves anything.
func GetRoomAvailability(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid room ID.", ctx)
		return
	}

	checkIn, err := time.Parse(dateLayout, ctx.URLParam("check_in"))
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid check_in, expected YYYY-MM-DD.", ctx)
		return
	}
	checkOut, err := time.Parse(dateLayout, ctx.URLParam("check_out"))
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid check_out, expected YYYY-MM-DD.", ctx)
		return
	}

	var room models.Room
	if err := storage.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Room not found.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	var existing []models.Booking
	blocking := []models.BookingStatus{models.BookingConfirmed, models.BookingCheckedIn}
	if err := storage.DB.Where("room_id = ? AND booking_status IN ?", id, blocking).Find(&existing).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	available := true
	for _, b := range existing {
		if rangesOverlap(checkIn, checkOut, b.CheckInDate, b.CheckOutDate) {
			available = false
			break
		}
	}

	ctx.JSON(iris.Map{
		"roomId":    room.ID,
		"checkIn":   checkIn.Format(dateLayout),
		"checkOut":  checkOut.Format(dateLayout),
		"available": available,
	})
}

func GetBookings(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	role := ctx.Values().GetStringDefault("userRole", "customer")

	q := storage.DB.Model(&models.Booking{}).
		Preload("Room").Preload("Room.RoomType").
		Preload("Customer").Preload("Customer.User")

	if role == "customer" {
		q = q.Joins("JOIN customers ON customers.id = bookings.customer_id").
			Where("customers.user_id = ?", userID)
	}

	var bookings []models.Booking
	if err := q.Order("bookings.created_at DESC").Find(&bookings).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(bookings)
}

// PATCH /api/admin/bookings/{id}/status
func AdminUpdateBookingStatus(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var body struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := ctx.ReadJSON(&body); err != nil || body.Status == "" {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_payload", "status required")
		return
	}
	if !validBookingStatus(body.Status) {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_payload", "unknown booking status")
		return
	}

	var booking models.Booking
	if err := storage.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(ctx, iris.StatusNotFound, "not_found", "booking not found")
			return
		}
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "database error")
		return
	}

	txErr := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&booking).Update("booking_status", body.Status).Error; err != nil {
			return err
		}
		// The stay is over: hand the room back to the available pool.
		if body.Status == models.BookingCheckedOut || body.Status == models.BookingCancelled {
			return tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
				Update("status", models.RoomAvailable).Error
		}
		return nil
	})
	if txErr != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "database error")
		return
	}

	utils.Logger.Info("booking status updated",
		zap.Uint("bookingID", booking.ID),
		zap.String("status", string(body.Status)),
	)

	ctx.JSON(iris.Map{"message": "Booking status updated"})
}

func validBookingStatus(s models.BookingStatus) bool {
	switch s {
	case models.BookingUnpaid, models.BookingConfirmed, models.BookingCheckedIn,
		models.BookingCheckedOut, models.BookingCancelled:
		return true
	}
	return false
}
