package handler

import (
	"github.com/eesast/sast-api/api"
	v1 "github.com/eesast/sast-api/api/arena/v1"
	"github.com/eesast/sast-api/internal/middleware"
	"github.com/eesast/sast-api/internal/service/arena"
	apperrors "github.com/eesast/sast-api/pkg/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateRoomHandler 创建对战房间
func CreateRoomHandler(c *gin.Context) {
	userUUID := c.GetString(middleware.CtxKeyUserUUID)

	var req v1.CreateRoomReq
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Error("arena-create bind json failed", zap.Error(err))
		// 绑定失败与业务校验失败走同一套状态码映射
		api.ResponseDomainError(c, apperrors.New(apperrors.KindValidation, "Missing credentials"))
		return
	}

	roomID, err := arena.CreateRoom(c.Request.Context(), userUUID, &req)
	if err != nil {
		api.ResponseDomainError(c, err)
		return
	}
	api.ResponseSuccess(c, v1.CreateRoomResp{RoomID: roomID})
}
