package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "auth_backend/internal/feature/auth/transport/handler"
	"auth_backend/internal/platform/correlation"
	platformhandler "auth_backend/internal/platform/http/handler"
	tokenmw "auth_backend/internal/platform/token"
)

// NewRouter は全エンドポイントのルーティングを構築します。
func NewRouter(authHandler *authhandler.AuthHandler, resolver tokenmw.Resolver) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(correlation.Middleware())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// 新規ユーザー登録
	r.POST("/register", authHandler.Register)
	// ログイン（ベアラートークン発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	// tokenmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーにベアラートークンが必要になる
	auth := r.Group("/")
	auth.Use(tokenmw.AuthRequired(resolver))
	{
		auth.GET("/profile", authHandler.Profile)
		auth.POST("/logout", authHandler.Logout)
	}

	return r
}
