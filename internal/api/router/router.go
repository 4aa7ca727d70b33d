package router

import (
	"vidtube/internal/api/handler"
	"vidtube/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	videoHandler *handler.VideoHandler,
	commentHandler *handler.CommentHandler,
	likeHandler *handler.LikeHandler,
	tweetHandler *handler.TweetHandler,
	playlistHandler *handler.PlaylistHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	v1 := r.Group("/api/v1")

	// --- 用户与认证模块 ---
	users := v1.Group("/users")
	{
		users.POST("/register", authHandler.Register)
		users.POST("/login", authHandler.Login)
		users.POST("/refresh-token", authHandler.Refresh)
		users.GET("/c/:username", middleware.AuthOptional(), userHandler.ChannelProfile)

		usersAuth := users.Group("", middleware.AuthRequired())
		{
			usersAuth.POST("/logout", authHandler.Logout)
			usersAuth.POST("/change-password", authHandler.ChangePassword)
			usersAuth.GET("/me", userHandler.Me)
			usersAuth.PATCH("/me", userHandler.UpdateAccount)
			usersAuth.PATCH("/me/avatar", userHandler.UpdateAvatar)
			usersAuth.PATCH("/me/cover", userHandler.UpdateCoverImage)
		}
	}

	// --- 视频模块 ---
	videos := v1.Group("/videos")
	{
		videos.GET("", videoHandler.List)
		videos.GET("/:id", middleware.AuthOptional(), videoHandler.Detail)

		videosAuth := videos.Group("", middleware.AuthRequired())
		{
			videosAuth.POST("", videoHandler.Publish)
			videosAuth.PATCH("/:id", videoHandler.Update)
			videosAuth.PATCH("/:id/thumbnail", videoHandler.UpdateThumbnail)
			videosAuth.DELETE("/:id", videoHandler.Delete)
			videosAuth.PATCH("/toggle/publish/:id", videoHandler.TogglePublish)
		}
	}

	// --- 评论模块 ---
	comments := v1.Group("/comments")
	{
		comments.GET("/video/:videoId", commentHandler.ListByVideo)

		commentsAuth := comments.Group("", middleware.AuthRequired())
		{
			commentsAuth.POST("/video/:videoId", commentHandler.Create)
			commentsAuth.PATCH("/:id", commentHandler.Update)
			commentsAuth.DELETE("/:id", commentHandler.Delete)
		}
	}

	// --- 点赞模块 ---
	likes := v1.Group("/likes", middleware.AuthRequired())
	{
		likes.POST("/video/:id", likeHandler.ToggleVideo)
		likes.POST("/comment/:id", likeHandler.ToggleComment)
		likes.POST("/tweet/:id", likeHandler.ToggleTweet)
		likes.GET("/videos", likeHandler.LikedVideos)
	}

	// --- 动态模块 ---
	tweets := v1.Group("/tweets")
	{
		tweets.GET("/user/:userId", tweetHandler.ListByUser)

		tweetsAuth := tweets.Group("", middleware.AuthRequired())
		{
			tweetsAuth.POST("", tweetHandler.Create)
			tweetsAuth.PATCH("/:id", tweetHandler.Update)
			tweetsAuth.DELETE("/:id", tweetHandler.Delete)
		}
	}

	// --- 播放列表模块 ---
	playlists := v1.Group("/playlists")
	{
		playlists.GET("/:id", playlistHandler.Detail)
		playlists.GET("/user/:userId", playlistHandler.ListByUser)

		playlistsAuth := playlists.Group("", middleware.AuthRequired())
		{
			playlistsAuth.POST("", playlistHandler.Create)
			playlistsAuth.PATCH("/:id", playlistHandler.Update)
			playlistsAuth.DELETE("/:id", playlistHandler.Delete)
			playlistsAuth.POST("/:id/videos/:videoId", playlistHandler.AddVideo)
			playlistsAuth.DELETE("/:id/videos/:videoId", playlistHandler.RemoveVideo)
		}
	}

	// --- 订阅模块 ---
	subscriptions := v1.Group("/subscriptions")
	{
		subscriptions.GET("/c/:channelId/subscribers", subscriptionHandler.ListSubscribers)
		subscriptions.GET("/c/:channelId/subscribers/count", subscriptionHandler.CountSubscribers)
		subscriptions.GET("/u/:userId/channels", subscriptionHandler.ListSubscribedChannels)
		subscriptions.GET("/u/:userId/channels/count", subscriptionHandler.CountSubscribedChannels)

		subscriptions.POST("/c/:channelId", middleware.AuthRequired(), subscriptionHandler.Toggle)
	}

	// --- 频道统计模块 ---
	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/stats/:channelId", dashboardHandler.ChannelStats)
		dashboard.GET("/videos", middleware.AuthRequired(), dashboardHandler.ChannelVideos)
	}
}
