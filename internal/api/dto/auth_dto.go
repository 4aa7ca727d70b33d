package dto

// RegisterRequest 注册请求（multipart/form-data，可附带头像和封面图）
type RegisterRequest struct {
	Username string `form:"username" binding:"required,min=1,max=100"`
	Email    string `form:"email" binding:"required,email,max=255"`
	FullName string `form:"full_name" binding:"required,min=1,max=100"`
	Password string `form:"password" binding:"required,min=6,max=255"`
}

// LoginRequest 登录请求（用户名或邮箱 + 密码）
type LoginRequest struct {
	Username string `json:"username" binding:"omitempty,max=255"`
	Email    string `json:"email" binding:"omitempty,max=255"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}

// RefreshTokenRequest 刷新令牌请求（令牌也可由 Cookie 携带）
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"omitempty"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required,min=6,max=255"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=255"`
}

// TokenPair 一对访问令牌和刷新令牌
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginData 登录成功返回的数据
type LoginData struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
}
