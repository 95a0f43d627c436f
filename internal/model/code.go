package model

import (
	"time"

	"github.com/eesast/sast-api/internal/constants"
)

// ContestTeamCode 队伍提交的代码
type ContestTeamCode struct {
	CodeID        string    `json:"code_id" gorm:"primaryKey"`
	TeamID        string    `json:"team_id" gorm:"index"`
	Language      string    `json:"language"`       // cpp / py
	CompileStatus string    `json:"compile_status"` // Success / Pending / Failed / No Need
	CreatedAt     time.Time `json:"created_at"`
}

func (ContestTeamCode) TableName() string { return "contest_team_code" }

// CodeInfo 代码的编译状态与语言
type CodeInfo struct {
	CompileStatus string `json:"compile_status"`
	Language      string `json:"language"`
}

// Ready 代码是否可以参战（已编译成功或无需编译）
func (c *CodeInfo) Ready() bool {
	return c.CompileStatus == constants.CompileStatusSuccess ||
		c.CompileStatus == constants.CompileStatusNoNeed
}

// LanguageSupported 代码语言是否受支持
func (c *CodeInfo) LanguageSupported() bool {
	return c.Language == constants.LanguageCpp || c.Language == constants.LanguagePython
}

// CodeFileName 代码在磁盘上的文件名：cpp 为编译产物（无扩展名），py 带 .py 后缀
func CodeFileName(codeID, language string) string {
	if language == constants.LanguagePython {
		return codeID + ".py"
	}
	return codeID
}
