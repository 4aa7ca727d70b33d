package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("评论不存在")

type CommentService struct {
	commentRepo *repository.CommentRepository
	videoRepo   *repository.VideoRepository
}

func NewCommentService(commentRepo *repository.CommentRepository, videoRepo *repository.VideoRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, videoRepo: videoRepo}
}

// Create 在视频下发表评论，视频必须存在
func (s *CommentService) Create(userID, videoID int64, content string) (*dto.CommentInfo, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		VideoID: videoID,
		OwnerID: userID,
		Content: content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return toCommentInfo(comment), nil
}

// Update 修改评论内容，非作者视同不存在
func (s *CommentService) Update(commentID, userID int64, content string) (*dto.CommentInfo, error) {
	if err := s.commentRepo.UpdateOwned(commentID, userID, content); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}
	return toCommentInfo(comment), nil
}

// Delete 删除评论，非作者视同不存在
func (s *CommentService) Delete(commentID, userID int64) error {
	deleted, err := s.commentRepo.DeleteOwned(commentID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCommentNotFound
	}
	return nil
}

// ListByVideo 分页获取视频的评论，按时间倒序
func (s *CommentService) ListByVideo(videoID int64, page, pageSize int) (*dto.CommentListData, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	page, pageSize = normalizePage(page, pageSize)
	skip := (page - 1) * pageSize

	comments, total, err := s.commentRepo.ListByVideo(videoID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	infos := make([]dto.CommentInfo, 0, len(comments))
	for i := range comments {
		infos = append(infos, *toCommentInfo(&comments[i]))
	}
	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	return &dto.CommentListData{
		Comments:   infos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func toCommentInfo(comment *model.Comment) *dto.CommentInfo {
	info := &dto.CommentInfo{
		ID:        comment.ID,
		VideoID:   comment.VideoID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
	if comment.Owner.ID != 0 {
		info.Owner = toUserBrief(&comment.Owner)
	}
	return info
}
