package main

import (
	"fmt"
	"log"
	"os"

	"hotelhub-server/routes"
	"hotelhub-server/storage"
	"hotelhub-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()

	utils.InitializeLogger()
	defer utils.Logger.Sync()

	storage.InitializeDB()
	storage.InitializeRedis()

	if os.Getenv("SEED_DB") == "true" {
		utils.SeedDemoData()
	}

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the dashboard (http://localhost:3000)
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	resetTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("EMAIL_TOKEN_SECRET")))
	resetTokenVerifier.WithDefaultBlocklist()
	resetTokenVerifierMiddleware := resetTokenVerifier.Verify(func() interface{} {
		return new(utils.ForgotPasswordToken)
	})

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	healthHandler := func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	}
	app.Get("/health", healthHandler)
	app.Get("/api/health", healthHandler)

	app.Get("/api/test/db", func(ctx iris.Context) {
		sqlDB, err := storage.DB.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			ctx.StatusCode(iris.StatusServiceUnavailable)
			ctx.JSON(iris.Map{"database": "down"})
			return
		}
		ctx.JSON(iris.Map{"database": "up"})
	})

	user := app.Party("/api/user")
	{
		user.Post("/register", routes.Register)
		user.Post("/login", routes.Login)
		user.Post("/apple", routes.AppleLoginOrSignUp)
		user.Post("/forgotpassword", routes.ForgotPassword)
		user.Post("/resetpassword", resetTokenVerifierMiddleware, routes.ResetPassword)
	}

	api := app.Party("/api")
	{
		api.Get("/room-types", routes.GetRoomTypes)
		api.Get("/rooms", routes.GetRooms)
		api.Get("/rooms/{id:uint}", routes.GetRoom)
		api.Get("/rooms/{id:uint}/availability", routes.GetRoomAvailability)
		api.Get("/room-images/{roomTypeID:uint}", routes.GetRoomImages)
		api.Get("/services", routes.GetServices)
		api.Get("/reviews", routes.GetReviews)

		api.Post("/bookings", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateBooking)
		api.Get("/bookings", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetBookings)
		api.Post("/transactions", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateTransaction)
		api.Post("/reviews", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateReview)

		api.Post("/cleaning-requests", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateCleaningRequest)
		api.Get("/cleaning-requests", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetCleaningRequests)
		api.Patch("/cleaning-requests/{id:uint}/status", accessTokenVerifierMiddleware, utils.StaffOnlyMiddleware, routes.UpdateCleaningRequestStatus)
		api.Post("/activity-log", accessTokenVerifierMiddleware, utils.StaffOnlyMiddleware, routes.PostActivityLog)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/dashboard", routes.AdminDashboard)
		admin.Get("/reports/monthly", routes.AdminMonthlyReport)
		admin.Get("/users", routes.AdminListUsers)
		admin.Get("/customers", routes.AdminListCustomers)
		admin.Get("/staff", routes.AdminListStaff)
		admin.Get("/rooms", routes.GetRooms)
		admin.Get("/transactions", routes.GetTransactions)
		admin.Get("/activity-log", routes.AdminActivityLog)
		admin.Post("/rooms", routes.AdminCreateRoom)
		admin.Patch("/rooms/{id:uint}/price", routes.AdminUpdateRoomPrice)
		admin.Post("/room-types", routes.AdminCreateRoomType)
		admin.Post("/room-types/{id:uint}/image", routes.AdminUploadRoomTypeImage)
		admin.Patch("/bookings/{id:uint}/status", routes.AdminUpdateBookingStatus)
		admin.Patch("/cleaning-requests/{id:uint}/assign", routes.AdminAssignCleaningRequest)
	}

	app.Post("/api/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := "0.0.0.0:" + port

	fmt.Printf("Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
