package arena

import (
	"context"

	apperrors "github.com/eesast/sast-api/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// checkReadiness 校验全部代码的编译状态与语言，返回与 codeIDs 对齐的语言列表
// 失败即关门：任何一份代码不合格则整个房间不创建
// 在任何文件系统写入之前执行
func (s *Service) checkReadiness(ctx context.Context, codeIDs []string) ([]string, error) {
	languages := make([]string, len(codeIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, codeID := range codeIDs {
		g.Go(func() error {
			info, err := s.codes.CodeInfo(gctx, codeID)
			if err != nil {
				return apperrors.Wrap(apperrors.KindInternal, "Code info lookup failed", err)
			}
			if info == nil {
				return apperrors.New(apperrors.KindNotFound, "Team code not found")
			}
			if !info.Ready() {
				return apperrors.New(apperrors.KindForbidden, "Team code not compiled")
			}
			if !info.LanguageSupported() {
				return apperrors.New(apperrors.KindForbidden, "Team code language not supported")
			}
			languages[i] = info.Language
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return languages, nil
}
