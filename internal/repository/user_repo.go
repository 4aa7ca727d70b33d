package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID 根据 ID 查询用户
func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername 根据用户名查询用户
func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsernameOrEmail 根据用户名或邮箱查询用户（登录用）
func (r *UserRepository) GetByUsernameOrEmail(identifier string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ? OR email = ?", identifier, identifier).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create 创建用户
func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// Update 更新用户字段
func (r *UserRepository) Update(id int64, updates map[string]interface{}) (*model.User, error) {
	result := r.db.Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// ExistsByUsernameOrEmail 检查用户名或邮箱是否已被占用
func (r *UserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetRefreshToken 写入当前有效的刷新令牌（覆盖旧值，同一用户仅一个有效）
func (r *UserRepository) SetRefreshToken(id int64, token string) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).
		Update("refresh_token", token).Error
}

// ClearRefreshToken 清空刷新令牌（登出后旧令牌永久失效）
func (r *UserRepository) ClearRefreshToken(id int64) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).
		Update("refresh_token", nil).Error
}
