package minio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eesast/sast-api/internal/dao"
	"github.com/minio/minio-go/v7"
)

// Storage 对象存储句柄，实现缓存层的 ObjectStorage 接口
type Storage struct{}

func (Storage) FetchObject(ctx context.Context, bucket, objectName, savePath string) error {
	return FetchObject(ctx, bucket, objectName, savePath)
}

// FetchObject 从对象存储下载对象到本地路径
// bucket: MinIO 存储桶名称
// objectName: 对象键
// savePath: 本地保存路径，父目录不存在时自动创建
func FetchObject(ctx context.Context, bucket, objectName, savePath string) error {
	if bucket == "" || objectName == "" {
		return fmt.Errorf("bucket and object name cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(savePath), 0755); err != nil {
		return fmt.Errorf("create local dir fail: %w", err)
	}

	// FGetObject 内部先写临时文件再改名，下载中断不会留下半个文件
	err := dao.MinIOClient.FGetObject(ctx, bucket, objectName, savePath, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("get object %s/%s fail: %w", bucket, objectName, err)
	}
	return nil
}
