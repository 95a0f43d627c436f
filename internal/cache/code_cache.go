package cache

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/eesast/sast-api/internal/constants"
	"github.com/eesast/sast-api/internal/model"
	apperrors "github.com/eesast/sast-api/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ObjectStorage 远端对象存储，缓存未命中时从这里取
type ObjectStorage interface {
	FetchObject(ctx context.Context, bucket, objectName, savePath string) error
}

// CodeCache 选手代码的本地持久缓存
// 目录布局 {baseDir}/{contest}/code/{team_id}/{file}，对象键与比赛目录下的相对路径一致
// 对本流水线而言缓存是只增的：文件只写一次，从不删除或覆盖
type CodeCache struct {
	baseDir string
	bucket  string
	storage ObjectStorage

	hits   atomic.Int64
	misses atomic.Int64
}

func NewCodeCache(baseDir, bucket string, storage ObjectStorage) *CodeCache {
	return &CodeCache{baseDir: baseDir, bucket: bucket, storage: storage}
}

// Entry 一个需要就位的代码文件
type Entry struct {
	TeamID   string
	CodeID   string
	Language string
}

// FilePath 代码文件在本地缓存中的绝对路径
func (c *CodeCache) FilePath(contestName string, e Entry) string {
	return filepath.Join(c.baseDir, contestName, constants.CodeDirName,
		e.TeamID, model.CodeFileName(e.CodeID, e.Language))
}

// Stats 缓存探测的命中与未命中次数
func (c *CodeCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *CodeCache) objectName(contestName string, e Entry) string {
	// 对象键用斜杠拼接，与文件系统分隔符无关
	return contestName + "/" + constants.CodeDirName + "/" +
		e.TeamID + "/" + model.CodeFileName(e.CodeID, e.Language)
}

// EnsurePresent 确认全部代码文件在本地缓存就位，缺失的并发从对象存储下载
// 任一下载失败即整体失败；已就位的文件不会被重新下载
func (c *CodeCache) EnsurePresent(ctx context.Context, contestName string, entries []Entry) error {
	exists := make([]bool, len(entries))

	// 并发探测本地文件是否存在
	g, gctx := errgroup.WithContext(ctx)
	for i, e := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := os.Stat(c.FilePath(contestName, e))
			exists[i] = err == nil
			if exists[i] {
				c.hits.Add(1)
			} else {
				c.misses.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "Code download failed", err)
	}

	// 并发下载缺失项
	g, gctx = errgroup.WithContext(ctx)
	for i, e := range entries {
		if exists[i] {
			continue
		}
		g.Go(func() error {
			savePath := c.FilePath(contestName, e)
			err := c.storage.FetchObject(gctx, c.bucket, c.objectName(contestName, e), savePath)
			if err != nil {
				// 已知竞态：并发的两次请求可能都发现同一文件缺失并同时下载，
				// 下载失败但文件已被对方写好时按成功处理
				if _, statErr := os.Stat(savePath); statErr == nil {
					zap.L().Info("代码文件已被并发请求下载",
						zap.String("path", savePath))
					return nil
				}
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "Code download failed", err)
	}
	return nil
}
