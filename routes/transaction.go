package routes

import (
	"errors"
	"fmt"

	"hotelhub-server/models"
	"hotelhub-server/storage"
	"hotelhub-server/utils"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TransactionInput struct {
	BookingID     uint    `json:"booking_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=cash card online"`
}

// CreateTransaction records a payment against an unpaid booking and
// confirms it. Confirmed bookings start blocking the room's calendar.
func CreateTransaction(ctx iris.Context) {
	var input TransactionInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var booking models.Booking
	if err := storage.DB.Preload("Customer").Preload("Customer.User").
		First(&booking, input.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Booking not found.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	if booking.Status != models.BookingUnpaid {
		utils.CreateError(iris.StatusBadRequest, "Payment Error", "Booking is already paid or no longer payable.", ctx)
		return
	}

	if input.Amount != booking.TotalAmount {
		utils.CreateError(iris.StatusBadRequest, "Payment Error",
			fmt.Sprintf("Payment amount must match the booking total of %.2f.", booking.TotalAmount), ctx)
		return
	}

	transaction := models.Transaction{
		Reference:     uuid.NewString(),
		BookingID:     booking.ID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: "completed",
	}

	txErr := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}
		return tx.Model(&models.Booking{}).Where("id = ?", booking.ID).
			Update("booking_status", models.BookingConfirmed).Error
	})
	if txErr != nil {
		utils.Logger.Error("failed to record transaction", zap.Error(txErr), zap.Uint("bookingID", booking.ID))
		utils.CreateInternalServerError(ctx)
		return
	}

	if email := booking.Customer.User.Email; email != "" {
		subject := "Booking Confirmed"
		html := fmt.Sprintf(`
		<p>Your payment of %.2f was received and booking #%d is confirmed.</p>
		<p>Check-in: %s<br />Check-out: %s</p>`,
			transaction.Amount, booking.ID,
			booking.CheckInDate.Format(dateLayout), booking.CheckOutDate.Format(dateLayout))
		if _, mailErr := utils.SendMail(email, subject, html); mailErr != nil {
			utils.Logger.Warn("confirmation email failed", zap.Error(mailErr), zap.Uint("bookingID", booking.ID))
		}
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message":       "Payment recorded",
		"reference":     transaction.Reference,
		"bookingId":     booking.ID,
		"amount":        transaction.Amount,
		"bookingStatus": models.BookingConfirmed,
	})
}

func GetTransactions(ctx iris.Context) {
	var transactions []models.Transaction
	if err := storage.DB.Preload("Booking").Order("created_at DESC").Find(&transactions).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(transactions)
}
