package media

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"vidtube/internal/config"
	"vidtube/internal/infra/minio"
	"vidtube/pkg/logger"

	"go.uber.org/zap"
)

// 封面图生成的固定变换参数（宽300、高200、裁剪填充、取第1秒帧）
const thumbnailTransform = "w_300-h_200-c_fill-so_1"

// MinIOUploader 基于 MinIO 的媒体托管客户端
type MinIOUploader struct {
	cfg *config.MinIOConfig
}

// NewMinIOUploader 创建 MinIO 媒体托管客户端
func NewMinIOUploader(cfg *config.MinIOConfig) *MinIOUploader {
	return &MinIOUploader{cfg: cfg}
}

// UploadVideo 上传视频文件到视频桶
func (u *MinIOUploader) UploadVideo(ctx context.Context, file *multipart.FileHeader) (*UploadResult, error) {
	return u.upload(ctx, file, u.cfg.VideoBucket, "videos")
}

// UploadImage 上传图片文件到图片桶
func (u *MinIOUploader) UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (*UploadResult, error) {
	return u.upload(ctx, file, u.cfg.ImageBucket, folder)
}

func (u *MinIOUploader) upload(ctx context.Context, file *multipart.FileHeader, bucket, folder string) (*UploadResult, error) {
	src, err := file.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", zap.String("filename", file.Filename), zap.Error(err))
		return nil, ErrUploadFailed
	}
	defer src.Close()

	name := objectName(folder, file.Filename)
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	object, err := minio.UploadFile(ctx, bucket, name, src, file.Size, contentType)
	if err != nil {
		logger.Error("Failed to upload file to MinIO",
			zap.String("bucket", bucket),
			zap.String("object", name),
			zap.Error(err))
		return nil, ErrUploadFailed
	}

	// 入库的是可直接访问的公开地址，不是桶内对象名
	return &UploadResult{
		URL:      minio.PublicURL(u.cfg.Endpoint, u.cfg.UseSSL, bucket, object),
		PublicID: name,
		Duration: 0,
	}, nil
}

// Remove 删除已上传的资源
func (u *MinIOUploader) Remove(ctx context.Context, publicID string, isVideo bool) error {
	bucket := u.cfg.ImageBucket
	if isVideo {
		bucket = u.cfg.VideoBucket
	}
	if err := minio.RemoveFile(ctx, bucket, publicID); err != nil {
		logger.Error("Failed to remove file from MinIO",
			zap.String("bucket", bucket),
			zap.String("object", publicID),
			zap.Error(err))
		return err
	}
	return nil
}

// ThumbnailURL 根据视频对象标识生成封面地址。
// 同一个对象标识总是得到同一个封面地址，封面由托管方按固定变换参数生成。
func (u *MinIOUploader) ThumbnailURL(publicID string) string {
	base := strings.TrimSuffix(path.Base(publicID), path.Ext(publicID))
	object := fmt.Sprintf("thumbnails/%s/%s.jpg", thumbnailTransform, base)
	return minio.PublicURL(u.cfg.Endpoint, u.cfg.UseSSL, u.cfg.ImageBucket, object)
}
