package main

import (
	"fmt"
	"log"

	"campuseats-be/configs"
	"campuseats-be/controllers"
	"campuseats-be/middlewares"
	"campuseats-be/pkg/cache"
	"campuseats-be/pkg/logger"
	"campuseats-be/pkg/mailer"
	"campuseats-be/repository"
	"campuseats-be/routes"
	"campuseats-be/services"
	"campuseats-be/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()

	// DB
	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		zlog.Fatal("db connect failed", zap.Error(err))
	}
	if err := configs.SetupDatabase(db); err != nil {
		zlog.Fatal("migrate failed", zap.Error(err))
	}
	if err := configs.SeedSuperAdmin(db); err != nil {
		zlog.Fatal("seed admin failed", zap.Error(err))
	}
	if err := configs.SeedShopSetting(db); err != nil {
		zlog.Fatal("seed shop setting failed", zap.Error(err))
	}

	// Redis-backed cache
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	tagCache := cache.New(rdb)

	// Mail
	var mail mailer.Mailer
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.MailFrom, cfg.SMTPUser, cfg.SMTPPass)
	} else {
		mail = mailer.NewLog(zlog)
	}

	// Websocket hub
	hub := ws.NewHub(zlog)
	go hub.Run()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	poolRepo := repository.NewPoolRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	shopRepo := repository.NewShopRepository(db)

	// Services
	shopSvc := services.NewShopService(shopRepo, tagCache, hub, zlog)
	menuSvc := services.NewMenuService(menuRepo, poolRepo, tagCache, zlog)
	adminMenuSvc := services.NewAdminMenuService(db, menuRepo, poolRepo, tagCache, hub, zlog)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, shopSvc)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, menuRepo, deliveryRepo, shopSvc, hub)
	authSvc := services.NewAuthService(userRepo, mail, zlog, cfg.JWTSecret, cfg.JWTTTL)
	adminSvc := services.NewAdminService(adminRepo, userRepo)
	deliverySvc := services.NewDeliveryService(deliveryRepo)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, routes.Deps{
		JWTSecret: cfg.JWTSecret,
		Admins:    adminRepo,
		Auth:      controllers.NewAuthController(authSvc, zlog),
		Menu:      controllers.NewMenuController(menuSvc, zlog),
		Cart:      controllers.NewCartController(cartSvc, zlog),
		Order:     controllers.NewOrderController(orderSvc, zlog, cfg.PaymentQRPayload),
		Shop:      controllers.NewShopController(shopSvc, zlog),
		Delivery:  controllers.NewDeliveryController(deliverySvc, zlog),
		AdmMenu:   controllers.NewAdminMenuController(menuSvc, adminMenuSvc, zlog),
		Admin:     controllers.NewAdminController(adminSvc, orderSvc, zlog),
		Hub:       hub,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	zlog.Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
