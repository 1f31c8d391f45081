package main

import (
	"log"
	"time"

	"app/internal/cache"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/gateway"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/pricing"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envが無ければ環境変数をそのまま使う
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := gormDB.AutoMigrate(
		&model.CartSession{},
		&model.CartItem{},
		&model.DiscountCode{},
		&model.ProductServiceConfig{},
		&model.Provider{},
		&model.Template{},
		&model.GenerationTask{},
	); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	//Repository（GORM実装）生成
	sessionRepo := infraRepo.NewCartSessionGormRepository(gormDB)
	itemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	discountRepo := infraRepo.NewDiscountCodeGormRepository(gormDB)
	configRepo := infraRepo.NewProductConfigGormRepository(gormDB)
	providerRepo := infraRepo.NewProviderGormRepository(gormDB)
	templateRepo := infraRepo.NewTemplateGormRepository(gormDB)
	taskRepo := infraRepo.NewGenerationTaskGormRepository(gormDB)

	//キャッシュとゲートウェイ
	productCache := cache.NewProductCache(
		cfg.CacheMaxSize,
		time.Duration(cfg.CacheTTLSeconds)*time.Second,
	)
	productGateway := gateway.NewProductGateway(
		configRepo,
		productCache,
		time.Duration(cfg.ProductServiceTimeoutSeconds)*time.Second,
	)

	//Usecase生成
	registry := usecase.NewDiscountRegistry(discountRepo)
	engine := pricing.NewEngine(discountRepo)
	cartUC := usecase.NewCartUsecase(sessionRepo, itemRepo, productGateway, registry, engine)
	configUC := usecase.NewConfigUsecase(productGateway, configRepo)
	providerUC := usecase.NewProviderUsecase(providerRepo)
	templateUC := usecase.NewTemplateUsecase(templateRepo)
	generationUC := usecase.NewGenerationUsecase(taskRepo, templateRepo, providerRepo, nil, cfg.GenerationConcurrency)

	//Handler生成
	handlers := server.Handlers{
		Cart:       handler.NewCartHandler(cartUC),
		Config:     handler.NewConfigHandler(configUC),
		Provider:   handler.NewProviderHandler(providerUC),
		Template:   handler.NewTemplateHandler(templateUC),
		Generation: handler.NewGenerationHandler(generationUC),
	}

	//Server起動
	addr := cfg.Port
	if addr != "" && addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, handlers); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
