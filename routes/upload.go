package routes

import (
	"encoding/json"
	"errors"

	"hotelhub-server/models"
	"hotelhub-server/storage"
	"hotelhub-server/utils"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// POST /api/admin/room-types/{id}/image (multipart field "image")
func AdminUploadRoomTypeImage(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var roomType models.RoomType
	if err := storage.DB.First(&roomType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(ctx, iris.StatusNotFound, "not_found", "room type not found")
			return
		}
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "database error")
		return
	}

	file, _, formErr := ctx.FormFile("image")
	if formErr != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_payload", "image file required")
		return
	}
	defer file.Close()

	url, uploadErr := utils.UploadImage(ctx.Request().Context(), file, "room_types")
	if uploadErr != nil {
		utils.Logger.Error("room type image upload failed", zap.Error(uploadErr), zap.Uint("roomTypeID", id))
		utils.JSONError(ctx, iris.StatusInternalServerError, "upload_error", "failed to upload image")
		return
	}

	var urls []string
	if len(roomType.ImageURLs) > 0 {
		json.Unmarshal(roomType.ImageURLs, &urls)
	}
	urls = append(urls, url)
	encoded, _ := json.Marshal(urls)

	if err := storage.DB.Model(&roomType).Update("image_urls", datatypes.JSON(encoded)).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "database error")
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"message": "Image uploaded", "url": url})
}
