package routes

import (
	"errors"

	"hotelhub-server/models"
	"hotelhub-server/storage"
	"hotelhub-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type ReviewInput struct {
	BookingID uint   `json:"booking_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=2000"`
}

func CreateReview(ctx iris.Context) {
	var input ReviewInput
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
		utils.CreateError(iris.StatusForbidden, "Forbidden", "You can only review your own bookings.", ctx)
		return
	}

	var existing int64
	storage.DB.Model(&models.Review{}).Where("booking_id = ?", booking.ID).Count(&existing)
	if existing > 0 {
		utils.CreateError(iris.StatusBadRequest, "Review Error", "This booking has already been reviewed.", ctx)
		return
	}

	review := models.Review{
		BookingID:  booking.ID,
		CustomerID: customer.ID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := storage.DB.Create(&review).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"message": "Review submitted", "reviewId": review.ID})
}

func GetReviews(ctx iris.Context) {
	var reviews []models.Review
	q := storage.DB.Preload("Customer").Preload("Customer.User").
		Preload("Booking").Order("created_at DESC")

	if roomID := ctx.URLParamDefault("room_id", ""); roomID != "" {
		q = q.Joins("JOIN bookings ON bookings.id = reviews.booking_id").
			Where("bookings.room_id = ?", roomID)
	}

	if err := q.Find(&reviews).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(reviews)
}
