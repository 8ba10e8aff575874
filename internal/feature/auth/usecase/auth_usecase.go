package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"auth_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// tokenBytes は発行するトークンの乱数バイト数を定義します（hex化で64文字）。
	tokenBytes = 32

	// tokenName は発行するトークンのラベルです。
	tokenName = "api"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// ExistsByEmail は指定されたメールアドレスのユーザーが存在するかを返します。
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RegisterInput はユーザー登録の入力を表す明示的な型です。
// 動的なフィールド組み立てではなく、バリデーション済みの値のみを受け取ります。
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users    UserRepository
	tokens   TokenRepository
	tokenTTL time.Duration
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenRepository, tokenTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:    users,
		tokens:   tokens,
		tokenTTL: tokenTTL,
	}
}

// hashToken は平文トークンのSHA-256ダイジェスト（hex）を返します。
// ストレージには常にダイジェストのみを保存します。
func hashToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// EmailTaken は指定されたメールアドレスが既に登録済みかを返します。
// バリデーターの一意性チェックに使用される読み取り専用の操作です。
func (u *authUsecase) EmailTaken(ctx context.Context, email string) (bool, error) {
	return u.users.ExistsByEmail(ctx, email)
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録し、作成されたユーザーを返します。
// メールアドレスが重複している場合、ErrEmailAlreadyExistsを返します。
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:        in.Name,
		Email:       in.Email,
		Password:    string(hashed),
		PhoneNumber: in.PhoneNumber,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login はユーザーを認証し、成功時にユーザーと平文のベアラートークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	// （「ユーザーなし」と「パスワード誤り」を区別しない＝アカウント列挙対策）
	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	plaintext, err := u.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, plaintext, nil
}

// issueToken は新しい不透明トークンを発行し、ダイジェストを永続化して平文を返します。
func (u *authUsecase) issueToken(ctx context.Context, user *entity.User) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	plaintext := hex.EncodeToString(buf)

	now := time.Now()
	token := &entity.AccessToken{
		ID:        hashToken(plaintext),
		UserID:    user.ID,
		Name:      tokenName,
		CreatedAt: now,
		ExpiresAt: now.Add(u.tokenTTL),
	}
	if err := u.tokens.Create(ctx, token); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	return plaintext, nil
}

// UserFromToken は平文トークンから認証済みユーザーを解決します。
// トークンが未知・期限切れの場合、ErrInvalidTokenを返します。
func (u *authUsecase) UserFromToken(ctx context.Context, plaintext string) (*entity.User, *entity.AccessToken, error) {
	token, err := u.tokens.FindByID(ctx, hashToken(plaintext))
	if err != nil {
		if err == ErrTokenNotFound {
			return nil, nil, ErrInvalidToken
		}
		return nil, nil, err
	}
	if token.IsExpired() {
		return nil, nil, ErrInvalidToken
	}

	user, err := u.users.FindByID(ctx, token.UserID)
	if err != nil {
		if err == ErrUserNotFound {
			return nil, nil, ErrInvalidToken
		}
		return nil, nil, err
	}
	return user, token, nil
}

// Logout は今回のリクエストで提示されたトークンのみを失効させます。
func (u *authUsecase) Logout(ctx context.Context, token *entity.AccessToken) error {
	return u.tokens.Delete(ctx, token.ID)
}
