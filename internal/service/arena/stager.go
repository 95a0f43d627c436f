package arena

import (
	"context"
	"os"
	"path/filepath"

	"github.com/eesast/sast-api/internal/cache"
	"github.com/eesast/sast-api/internal/constants"
	"github.com/eesast/sast-api/internal/model"
	file_util "github.com/eesast/sast-api/internal/util/file"
	apperrors "github.com/eesast/sast-api/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// arenaRoot 比赛的对战目录
func (s *Service) arenaRoot(contestName string) string {
	return filepath.Join(s.baseDir, contestName, constants.ArenaDirName)
}

// stageWorkspace 搭建本次对战的临时工作目录
// 1. 在对战目录下以随机名建临时目录
// 2. 确认全部代码文件在本地缓存就位（缺失的并发下载，任一失败则整体失败，不做任何复制）
// 3. 把缓存中的代码复制（而非移动）进临时目录——缓存被并发对战共用
// 调用方负责失败时删除临时目录
func (s *Service) stageWorkspace(ctx context.Context, contestName string, entries []cache.Entry) (*model.Workspace, error) {
	tempID := uuid.NewString()
	tempPath := filepath.Join(s.arenaRoot(contestName), tempID)
	if err := os.MkdirAll(tempPath, constants.ArenaDirPerm); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Workspace create failed", err)
	}
	zap.L().Info("创建临时对战目录", zap.String("dir", tempPath))

	ws := &model.Workspace{TempID: tempID, Path: tempPath}

	// 缓存缺失的代码先全部就位，之后才开始复制
	if err := s.cache.EnsurePresent(ctx, contestName, entries); err != nil {
		return ws, err
	}

	files := make([]string, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	for i, e := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fileName := model.CodeFileName(e.CodeID, e.Language)
			src := s.cache.FilePath(contestName, e)
			if err := file_util.CopyFile(src, filepath.Join(tempPath, fileName)); err != nil {
				return err
			}
			files[i] = fileName
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ws, apperrors.Wrap(apperrors.KindInternal, "Code copy failed", err)
	}
	ws.Files = files
	return ws, nil
}

// discardWorkspace 丢弃未晋升的临时工作目录（补偿动作）
func (s *Service) discardWorkspace(ws *model.Workspace) {
	if ws == nil || ws.Path == "" {
		return
	}
	if err := os.RemoveAll(ws.Path); err != nil {
		zap.L().Warn("清理临时对战目录失败", zap.String("dir", ws.Path), zap.Error(err))
	}
}

// codeEntries 把解析完成的名单转成待就位的代码文件清单
// languages 与名单展平后的代码顺序对齐
func codeEntries(rosters []model.TeamRoster, languages []string) []cache.Entry {
	var entries []cache.Entry
	idx := 0
	for _, r := range rosters {
		for _, codeID := range r.PlayerCodes {
			entries = append(entries, cache.Entry{
				TeamID:   r.TeamID,
				CodeID:   codeID,
				Language: languages[idx],
			})
			idx++
		}
	}
	return entries
}
