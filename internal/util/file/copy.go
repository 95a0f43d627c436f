package file_util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyFile 复制文件（不移动），目标目录不存在时自动创建
// 复制而非移动：源文件可能被多场并发对战共用
func CopyFile(src, dst string) (err error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("源文件错误: %w", err)
	}
	if !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("%s 不是常规文件", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("打开源文件失败: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return fmt.Errorf("创建目标文件失败: %w", err)
	}
	defer func() {
		dstFile.Close()
		if err != nil {
			os.Remove(dst) // 如果出错，清理目标文件
		}
	}()

	if _, err = io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("复制内容失败: %w", err)
	}

	if err = dstFile.Sync(); err != nil {
		return fmt.Errorf("同步到磁盘失败: %w", err)
	}
	return nil
}
