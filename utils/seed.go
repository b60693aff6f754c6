package utils

import (
	"time"

	"hotelhub-server/models"
	"hotelhub-server/storage"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// SeedDemoData loads the demo hotel inventory and accounts used by the
// dashboard walkthrough. It is a no-op when data already exists.
func SeedDemoData() {
	db := storage.DB

	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		seedUsers()
	}

	var roomTypeCount int64
	db.Model(&models.RoomType{}).Count(&roomTypeCount)
	if roomTypeCount == 0 {
		seedRooms()
	}

	var serviceCount int64
	db.Model(&models.Service{}).Count(&serviceCount)
	if serviceCount == 0 {
		seedServices()
	}

	Logger.Info("demo data seeded")
}

func seedUsers() {
	db := storage.DB

	hash := func(password string) string {
		hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		return string(hashed)
	}

	admin := models.User{CNIC: "5353535355", Email: "admin@hotel.com", Password: hash("admin123"),
		Role: models.AdminRole, FirstName: "Admin", LastName: "User", Phone: "+1000000000"}
	db.Create(&admin)
	adminStaff := models.Staff{UserID: admin.ID, CNIC: admin.CNIC, Phone: admin.Phone,
		HireDate: time.Date(2020, 12, 1, 0, 0, 0, 0, time.UTC), Role: "admin"}
	db.Create(&adminStaff)
	db.Create(&models.Admin{StaffID: adminStaff.ID, AccessLevel: "super"})

	customer := models.User{CNIC: "1325429499", Email: "ali@example.com", Password: hash("customer123"),
		Role: models.CustomerRole, FirstName: "Ali", LastName: "Haider", Phone: "+1000079601"}
	db.Create(&customer)
	db.Create(&models.Customer{UserID: customer.ID, CNIC: customer.CNIC, Phone: customer.Phone})

	receptionist := models.User{CNIC: "948472900003", Email: "receptionist@example.com",
		Password: hash("reception123"), Role: models.ReceptionistRole, FirstName: "Alice", LastName: "Parker"}
	db.Create(&receptionist)
	receptionStaff := models.Staff{UserID: receptionist.ID, CNIC: receptionist.CNIC,
		HireDate: time.Date(2015, 11, 4, 0, 0, 0, 0, time.UTC), Role: "receptionist"}
	db.Create(&receptionStaff)
	db.Create(&models.Receptionist{StaffID: receptionStaff.ID, DeskNumber: "5"})

	cleaner := models.User{CNIC: "84020499444", Email: "cleaningstaff@example.com",
		Password: hash("staff123"), Role: models.StaffRole, FirstName: "Brian", LastName: "Shaw"}
	db.Create(&cleaner)
	cleanerStaff := models.Staff{UserID: cleaner.ID, CNIC: cleaner.CNIC,
		HireDate: time.Date(2018, 9, 4, 0, 0, 0, 0, time.UTC), Role: "cleaning"}
	db.Create(&cleanerStaff)
	db.Create(&models.CleaningStaff{StaffID: cleanerStaff.ID, CleaningZone: "all floors"})

	Logger.Info("demo users created", zap.Int("count", 4))
}

func seedRooms() {
	db := storage.DB

	roomTypes := []models.RoomType{
		{Name: "Standard Single", Description: "Basic single room", BasePrice: 50, MaxOccupancy: 1,
			Amenities: datatypes.JSON(`["WiFi","TV","AC"]`)},
		{Name: "Standard Double", Description: "Double room", BasePrice: 80, MaxOccupancy: 2,
			Amenities: datatypes.JSON(`["WiFi","TV","AC","Mini Bar"]`)},
		{Name: "Deluxe Suite", Description: "Suite", BasePrice: 220, MaxOccupancy: 4,
			Amenities: datatypes.JSON(`["WiFi","TV","AC","Balcony","Room Service"]`)},
	}
	for i := range roomTypes {
		db.Create(&roomTypes[i])
	}

	price := func(v float64) *float64 { return &v }
	rooms := []models.Room{
		{RoomNumber: 101, RoomTypeID: roomTypes[0].ID, Floor: 1, PricePerNight: price(50)},
		{RoomNumber: 102, RoomTypeID: roomTypes[0].ID, Floor: 1, PricePerNight: price(50)},
		{RoomNumber: 103, RoomTypeID: roomTypes[0].ID, Floor: 1, PricePerNight: price(50)},
		{RoomNumber: 201, RoomTypeID: roomTypes[1].ID, Floor: 2, PricePerNight: price(80)},
		{RoomNumber: 202, RoomTypeID: roomTypes[1].ID, Floor: 2, PricePerNight: price(80)},
		{RoomNumber: 301, RoomTypeID: roomTypes[2].ID, Floor: 3, PricePerNight: price(220)},
		{RoomNumber: 302, RoomTypeID: roomTypes[2].ID, Floor: 3, PricePerNight: price(220)},
		{RoomNumber: 401, RoomTypeID: roomTypes[2].ID, Floor: 4, PricePerNight: price(220)},
	}
	for i := range rooms {
		rooms[i].Status = models.RoomAvailable
		db.Create(&rooms[i])
	}

	Logger.Info("demo rooms created", zap.Int("roomTypes", len(roomTypes)), zap.Int("rooms", len(rooms)))
}

func seedServices() {
	db := storage.DB

	services := []models.Service{
		{Name: "Room Service", Description: "Convenient room service for meals and drinks", Price: 25, Category: "food"},
		{Name: "Spa Treatment", Description: "Relaxing spa and wellness treatments", Price: 80, Category: "spa"},
		{Name: "Airport Transfer", Description: "Comfortable transfer to/from airport", Price: 45, Category: "transport"},
		{Name: "Laundry Service", Description: "Professional laundry and dry cleaning", Price: 15, Category: "laundry"},
		{Name: "Car Rental", Description: "Convenient car rental service", Price: 60, Category: "other"},
	}
	for i := range services {
		db.Create(&services[i])
	}
}
