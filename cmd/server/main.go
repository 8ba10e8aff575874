package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"auth_backend/internal/app/router"
	authadapters "auth_backend/internal/feature/auth/adapters"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	authusecase "auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/config"
	platformdb "auth_backend/internal/platform/db"
	platformredis "auth_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// db
	db := platformdb.OpenDB(cfg.Database)

	// Repository
	userRepo := authadapters.NewUserGorm(db)

	// トークンストアはRedis優先、接続不可ならDBにフォールバック
	var tokenRepo authusecase.TokenRepository
	if cfg.Redis.Addr != "" {
		if rdb, err := platformredis.NewRedisClient(cfg.Redis); err == nil {
			tokenRepo = authadapters.NewTokenRedis(rdb, "token")
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		} else {
			log.Println("[WARN] Redis unavailable. Storing tokens in the database.")
		}
	}
	if tokenRepo == nil {
		repo := authadapters.NewTokenGorm(db)
		// DBストアでは期限切れトークンが残るため、起動時に掃除する
		if n, err := repo.DeleteExpired(context.Background()); err != nil {
			log.Println("[WARN] Failed to purge expired tokens:", err)
		} else if n > 0 {
			log.Printf("[INFO] Purged %d expired tokens", n)
		}
		tokenRepo = repo
	}

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenRepo, cfg.TokenTTL)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)

	// ルータ生成
	r := router.NewRouter(authH, authUC)

	if err := r.Run(cfg.Address()); err != nil {
		log.Fatal(err)
	}
}
