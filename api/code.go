package api

import (
	apperrors "github.com/eesast/sast-api/pkg/errors"
)

// ResCode 定义返回码类型
type ResCode int64

// 定义一些返回码示例,可根据业务需求自定义
const (
	CodeSuccess      ResCode = 0
	CodeInvalidParam ResCode = 4000
	CodeNotFound     ResCode = 4040
	CodeForbidden    ResCode = 4030
	CodeRateLimited  ResCode = 4230

	CodeNeedLogin    ResCode = 4100
	CodeInvalidToken ResCode = 4200

	CodeServerBusy ResCode = 5000
)

var codeMsgMap = map[ResCode]string{
	CodeSuccess:      "success",
	CodeInvalidParam: "请求参数错误",
	CodeNotFound:     "资源不存在",
	CodeForbidden:    "无权限或功能未开放",
	CodeRateLimited:  "请求过于频繁",
	CodeServerBusy:   "服务繁忙",

	CodeNeedLogin:    "需要登录",
	CodeInvalidToken: "无效的token",
}

func (c ResCode) Msg() string {
	msg, ok := codeMsgMap[c]
	if !ok {
		msg = codeMsgMap[CodeServerBusy]
	}
	return msg
}

// CodeOf 业务错误类别到返回码的映射
func CodeOf(err error) ResCode {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		return CodeInvalidParam
	case apperrors.KindNotFound:
		return CodeNotFound
	case apperrors.KindForbidden:
		return CodeForbidden
	case apperrors.KindRateLimited:
		return CodeRateLimited
	default:
		return CodeServerBusy
	}
}
