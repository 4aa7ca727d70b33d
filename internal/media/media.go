package media

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ErrUploadFailed 媒体托管方上传失败
var ErrUploadFailed = errors.New("媒体文件上传失败")

// UploadResult 媒体托管方返回的上传结果
type UploadResult struct {
	URL      string  // 可公开访问的资源地址
	PublicID string  // 托管方内部的对象标识
	Duration float64 // 视频时长（秒），非视频资源为0
}

// Uploader 媒体托管客户端接口
type Uploader interface {
	// UploadVideo 上传视频文件，返回地址、对象标识和时长
	UploadVideo(ctx context.Context, file *multipart.FileHeader) (*UploadResult, error)
	// UploadImage 上传图片文件（头像、封面图等）
	UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (*UploadResult, error)
	// Remove 按对象标识删除已上传的资源
	Remove(ctx context.Context, publicID string, isVideo bool) error
	// ThumbnailURL 根据视频对象标识生成封面地址
	ThumbnailURL(publicID string) string
}

// objectName 生成唯一对象名，保留原始扩展名
func objectName(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)
}
