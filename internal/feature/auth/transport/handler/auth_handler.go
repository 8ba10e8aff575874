// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/api"
	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/transport/http/dto"
	"auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/correlation"
	"auth_backend/internal/platform/token"
	"auth_backend/internal/platform/validation"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// EmailTaken は指定されたメールアドレスが登録済みかを返します。
	EmailTaken(ctx context.Context, email string) (bool, error)
	// Register は新規ユーザーを登録し、作成されたユーザーを返します。
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	// Login はユーザーを認証し、成功時にユーザーと平文トークンを返します。
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// Logout は提示されたトークンのみを失効させます。
	Logout(ctx context.Context, tok *entity.AccessToken) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// すべての結果を統一レスポンスエンベロープにマッピングします。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// respondInternal は予期しない失敗をログに記録し、500エンベロープを返します。
// 生のエラーテキストはクライアントに返さず、相関IDのみを公開します。
func respondInternal(c *gin.Context, message string, err error) {
	id := correlation.FromContext(c)
	slog.Error(message, "error", err, "correlation_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusInternalServerError,
		api.Error(message, http.StatusInternalServerError).
			WithData(gin.H{"correlation_id": id}))
}

// respondValidation はフィールド別メッセージ付きの400エンベロープを返します。
func respondValidation(c *gin.Context, errs validation.Errors) {
	c.JSON(http.StatusBadRequest,
		api.Error(errs.First(), http.StatusBadRequest).
			WithData(gin.H{"errors": errs}))
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインドし、違反はすべてまとめて400で返却
// - メール重複（事前チェックおよび挿入時の競合）は400で返却
// - 成功時は作成されたユーザー付きで201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		respondValidation(c, validation.Convert(err))
		return
	}

	// メールアドレスの一意性をストアに対して読み取り専用で確認
	taken, err := h.auth.EmailTaken(c.Request.Context(), req.Email)
	if err != nil {
		respondInternal(c, "Unable to register user! Please try again!", err)
		return
	}
	if taken {
		respondValidation(c, validation.EmailTaken())
		return
	}

	user, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		// バリデーションをすり抜けた同時登録は一意制約違反として現れる
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			respondValidation(c, validation.EmailTaken())
			return
		}
		respondInternal(c, "Unable to register user! Please try again!", err)
		return
	}

	slog.Info("user registered", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated,
		api.Success("User has been registered successfully!", user, http.StatusCreated))
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - 認証失敗時は「ユーザーなし」と「パスワード誤り」を区別せず400を返却
// - 成功時はユーザーとベアラートークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		respondValidation(c, validation.Convert(err))
		return
	}

	user, plaintext, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest,
				api.Error("Unable to login due to invalid credentials!", http.StatusBadRequest))
			return
		}
		respondInternal(c, "Unable to login user! Please try again!", err)
		return
	}

	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK,
		api.Success("User has been successfully logged in!",
			gin.H{"user": user, "token": plaintext}, http.StatusOK))
}

// Profile は認証済みユーザーのプロフィールを返します。
// ユーザーはトークンミドルウェアによって解決済みです。
func (h *AuthHandler) Profile(c *gin.Context) {
	user := token.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusBadRequest,
			api.Error("Unable to fetch user data due to invalid token!", http.StatusBadRequest))
		return
	}

	c.JSON(http.StatusOK,
		api.Success("User profile fetched successfully", user, http.StatusOK))
}

// Logout は今回のリクエストで提示されたトークンのみを失効させます。
// ユーザーが解決できない場合はsuccess=falseの400を返却します。
func (h *AuthHandler) Logout(c *gin.Context) {
	user := token.CurrentUser(c)
	tok := token.CurrentToken(c)
	if user == nil || tok == nil {
		c.JSON(http.StatusBadRequest,
			api.Error("Unable to logout user due to invalid token!", http.StatusBadRequest))
		return
	}

	if err := h.auth.Logout(c.Request.Context(), tok); err != nil {
		respondInternal(c, "Unable to logout user! Please try again!", err)
		return
	}

	slog.Info("user logged out", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK,
		api.Success("User logged out successfully!", nil, http.StatusOK))
}
