package routes

import (
	"errors"

	"hotelhub-server/models"
	"hotelhub-server/storage"
	"hotelhub-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

func GetRoomTypes(ctx iris.Context) {
	var roomTypes []models.RoomType
	if err := storage.DB.Order("name").Find(&roomTypes).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(roomTypes)
}

func GetRooms(ctx iris.Context) {
	status := ctx.URLParamDefault("status", "")
	roomTypeID := ctx.URLParamDefault("room_type_id", "")
	minPrice := ctx.URLParamDefault("min_price", "")
	maxPrice := ctx.URLParamDefault("max_price", "")

	q := storage.DB.Model(&models.Room{}).
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Preload("RoomType")

	if status != "" {
		q = q.Where("rooms.status = ?", status)
	}
	if roomTypeID != "" {
		q = q.Where("rooms.room_type_id = ?", roomTypeID)
	}
	if minPrice != "" {
		q = q.Where("COALESCE(rooms.price_per_night, room_types.base_price) >= ?", minPrice)
	}
	if maxPrice != "" {
		q = q.Where("COALESCE(rooms.price_per_night, room_types.base_price) <= ?", maxPrice)
	}

	var rooms []models.Room
	if err := q.Order("rooms.room_number").Find(&rooms).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(rooms)
}

func GetRoom(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid room ID.", ctx)
		return
	}

	var room models.Room
	if err := storage.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Room not found.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"room":           room,
		"effectivePrice": room.EffectivePrice(),
	})
}

func GetRoomImages(ctx iris.Context) {
	id, err := ctx.Params().GetUint("roomTypeID")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid room type ID.", ctx)
		return
	}

	var roomType models.RoomType
	if err := storage.DB.First(&roomType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Room type not found.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"images": roomType.ImageURLs})
}

func GetServices(ctx iris.Context) {
	var services []models.Service
	if err := storage.DB.Order("name").Find(&services).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(services)
}
