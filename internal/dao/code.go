package dao

import (
	"context"
	"errors"

	"github.com/eesast/sast-api/internal/model"
	"gorm.io/gorm"
)

// CodeDao 代码存储，只读
type CodeDao struct {
	db *gorm.DB
}

func NewCodeDao() *CodeDao {
	return &CodeDao{db: DB}
}

// CodeInfo 按代码 ID 查编译状态与语言，不存在时返回 nil
func (d *CodeDao) CodeInfo(ctx context.Context, codeID string) (*model.CodeInfo, error) {
	var code model.ContestTeamCode
	err := d.db.WithContext(ctx).
		Select("compile_status", "language").
		Where("code_id = ?", codeID).
		Take(&code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &model.CodeInfo{CompileStatus: code.CompileStatus, Language: code.Language}, nil
}
