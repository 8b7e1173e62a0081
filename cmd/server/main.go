package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"huffman_go/internal/config"
	"huffman_go/internal/handler"
	"huffman_go/internal/repo"
	"huffman_go/internal/router"
	"huffman_go/internal/service"
	"huffman_go/pkg/logger"
)

func main() {
	// 설정/로거 초기화
	cfg := config.Load()
	logg := logger.New()
	gin.SetMode(cfg.GinMode)

	// 의존성 생성
	artifactRepo := repo.NewArtifactRepoInMemory()
	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		pool, err := repo.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		if err := repo.Migrate(ctx, pool); err != nil {
			log.Fatal(err)
		}
		artifactRepo = repo.NewArtifactRepoPG(pool)
		logg.Infof("using postgres artifact store")
	}

	svc, err := service.NewCompressionService(artifactRepo, logg, cfg.MaxInputBytes)
	if err != nil {
		log.Fatal(err)
	}
	artifactH := handler.NewArtifactHandler(svc, cfg.MaxInputBytes)

	// Gin 라우터 생성 및 라우팅 구성
	r := gin.Default()
	router.Register(r, router.Dependencies{
		ArtifactHandler: artifactH,
	})

	addr := ":" + cfg.Port
	log.Printf("starting server at %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
