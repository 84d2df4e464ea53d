package router

import (
	"strings"
	"time"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/config"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/handler"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/infra"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/middleware"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/repository"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/service"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine, plus the
// report service the worker pool needs for async PDF rendering.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) (*gin.Engine, service.RaporService) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitRPM, time.Minute))

	// ── Infrastructure ───────────────────────────────────────────────────────
	overpassBreaker := infra.NewMirrorBreaker(infra.DefaultMirrorBreakerConfig())
	overpass := infra.NewOverpassClient(strings.Split(cfg.OverpassURLs, ","), overpassBreaker)

	// ── Repositories ─────────────────────────────────────────────────────────
	personelRepo := repository.NewPersonelRepository(db)
	seferRepo := repository.NewSeferRepository(db)
	koltukRepo := repository.NewKoltukRepository(db)
	kasaRepo := repository.NewKasaRepository(db)
	urunRepo := repository.NewUrunRepository(db)
	stokRepo := repository.NewStokHareketiRepository(db)
	notRepo := repository.NewNotRepository(db)
	hatRepo := repository.NewHatRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(personelRepo, cfg)
	seferSvc := service.NewSeferService(seferRepo)
	koltukSvc := service.NewKoltukService(koltukRepo, seferRepo, hatRepo)
	kasaSvc := service.NewKasaService(kasaRepo, seferRepo)
	urunSvc := service.NewUrunService(urunRepo)
	stokSvc := service.NewStokService(stokRepo, urunRepo, seferRepo, rdb, dispatcher, cfg.AlertEmail)
	satisSvc := service.NewSatisService(stokRepo, kasaRepo, urunRepo, seferRepo)
	notSvc := service.NewNotService(notRepo, seferRepo)
	hatSvc := service.NewHatService(hatRepo)
	raporSvc := service.NewRaporService(seferRepo, koltukRepo, kasaRepo, stokRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	personelH := handler.NewPersonelHandler(authSvc)
	seferH := handler.NewSeferHandler(seferSvc)
	koltukH := handler.NewKoltukHandler(koltukSvc)
	kasaH := handler.NewKasaHandler(kasaSvc)
	urunH := handler.NewUrunHandler(urunSvc)
	stokH := handler.NewStokHandler(stokSvc)
	satisH := handler.NewSatisHandler(satisSvc)
	notH := handler.NewNotHandler(notSvc)
	hatH := handler.NewHatHandler(hatSvc)
	raporH := handler.NewRaporHandler(raporSvc)
	hizH := handler.NewHizLimitiHandler(overpass, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/v1/hiz-limiti", hizH.HizLimiti)

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	herkes := middleware.RequireRole("hostes", "kaptan", "yonetici")
	yonetici := middleware.RequireRole("yonetici")

	v1 := r.Group("/v1", jwtMW)
	{
		// Crew accounts — yonetici only
		personel := v1.Group("/personel", yonetici)
		{
			personel.POST("", personelH.Olustur)
			personel.GET("", personelH.Listele)
			personel.PUT("/:id", personelH.Guncelle)
			personel.DELETE("/:id", personelH.Deaktive)
			personel.PATCH("/:id/aktif", personelH.Reaktive)
		}

		// Trips, seats, notes, per-trip ledger views — any crew member
		seferler := v1.Group("/seferler", herkes)
		{
			seferler.POST("", seferH.Olustur)
			seferler.GET("", seferH.Listele)
			seferler.GET("/:id", seferH.Getir)

			seferler.GET("/:id/koltuklar", koltukH.Harita)
			seferler.PUT("/:id/koltuklar/:no", koltukH.Ata)
			seferler.DELETE("/:id/koltuklar/:no", koltukH.Bosalt)

			seferler.GET("/:id/kasa", kasaH.SeferHareketleri)
			seferler.GET("/:id/kasa/ozet", kasaH.SeferOzeti)

			seferler.POST("/:id/notlar", notH.Ekle)
			seferler.GET("/:id/notlar", notH.SeferNotlari)
		}

		// Cash ledger
		v1.POST("/kasa", herkes, kasaH.Kaydet)
		v1.GET("/kasa", herkes, kasaH.Listele)

		// Product catalog — reads for everyone, writes yonetici
		v1.GET("/urunler", herkes, urunH.Listele)
		v1.GET("/urunler/:id", herkes, urunH.Getir)
		v1.GET("/urunler/:id/stok", herkes, stokH.MevcutStok)
		urunler := v1.Group("/urunler", yonetici)
		{
			urunler.POST("", urunH.Olustur)
			urunler.PUT("/:id", urunH.Guncelle)
			urunler.DELETE("/:id", urunH.Deaktive)
			urunler.PATCH("/:id/aktif", urunH.Reaktive)
		}

		// Inventory ledger
		v1.POST("/stok/hareketler", herkes, stokH.Hareket)
		v1.GET("/stok/hareketler", herkes, stokH.Hareketler)
		v1.GET("/stok/kritik", herkes, stokH.KritikStoklar)

		// Atomic on-board sale
		v1.POST("/satis", herkes, satisH.Sat)

		// Routes & fares — reads for everyone, writes yonetici
		v1.GET("/hatlar", herkes, hatH.Listele)
		v1.GET("/hatlar/:id", herkes, hatH.Getir)
		v1.GET("/hatlar/:id/tarife", herkes, hatH.TarifeListele)
		v1.GET("/tarife/hesapla", herkes, hatH.UcretHesapla)
		hatlar := v1.Group("/hatlar", yonetici)
		{
			hatlar.POST("", hatH.Olustur)
			hatlar.PUT("/:id", hatH.Guncelle)
			hatlar.DELETE("/:id", hatH.Deaktive)
			hatlar.PUT("/:id/tarife", hatH.TarifeUpsert)
		}

		// Reports
		raporlar := v1.Group("/raporlar", herkes)
		{
			raporlar.GET("/sefer/:id", raporH.SeferRaporu)
			raporlar.POST("/sefer/:id/pdf", raporH.PDFTalep)
			raporlar.GET("/koltuklar", raporH.KoltukIstatistik)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, raporSvc
}
