package main

import (
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"bakery-api/config"
	_ "bakery-api/docs" // Import docs for swagger
	"bakery-api/middleware"
	"bakery-api/repository"
	"bakery-api/routes"
)

//	@title			SAE Bakery – SOP API
//	@version		1.0
//	@description	API inventori & penjualan untuk operasional bakery
//	@description
//	@description	**Login bawaan:**
//	@description	- Admin: admin@sae-bakery.local / admin123 (wajib dirotasi)
//	@description
//	@description	**Authentication:**
//	@description	- Semua endpoint (kecuali login) memerlukan Bearer Token
//	@description	- Token didapat dari endpoint /api/auth/login
//	@description	- Format: Authorization: Bearer {token} (query ?token= juga diterima)

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Load file .env (tidak fatal jika gagal)
	_ = godotenv.Load()

	// Wajib JWT_SECRET di production; default aman untuk development
	appEnv := strings.ToLower(os.Getenv("APP_ENV"))
	if os.Getenv("JWT_SECRET") == "" {
		if appEnv == "production" {
			log.Fatal("❌ JWT_SECRET harus diset di environment production")
		}
		os.Setenv("JWT_SECRET", "dev_secret_key_change_me")
		log.Println("⚠️ JWT_SECRET tidak diset, menggunakan default untuk development")
	}

	// Koneksi ke MongoDB
	config.ConnectDB()

	// Redis opsional; caching dimatikan jika tidak terjangkau
	config.InitRedis()
	if config.RedisClient != nil {
		if err := config.RedisClient.Ping(config.RedisCtx()).Err(); err != nil {
			config.RedisClient = nil
			log.Println("⚠️ Redis dikonfigurasi tapi tidak terjangkau, caching dimatikan")
		} else {
			log.Println("✅ Terhubung ke Redis")
		}
	}

	// Index unik per koleksi
	if err := repository.EnsureUserIndexes(); err != nil {
		log.Printf("⚠️ Gagal membuat index user: %v", err)
	}
	if err := repository.EnsureBarangIndexes(); err != nil {
		log.Printf("⚠️ Gagal membuat index barang: %v", err)
	}
	if err := repository.EnsureSupplierIndexes(); err != nil {
		log.Printf("⚠️ Gagal membuat index supplier: %v", err)
	}
	if err := repository.EnsureCustomerIndexes(); err != nil {
		log.Printf("⚠️ Gagal membuat index customer: %v", err)
	}
	if err := repository.EnsurePembelianIndexes(); err != nil {
		log.Printf("⚠️ Gagal membuat index pembelian: %v", err)
	}
	if err := repository.EnsureMutasiIndexes(); err != nil {
		log.Printf("⚠️ Gagal membuat index barang masuk/keluar: %v", err)
	}
	if err := repository.EnsurePenjualanIndexes(); err != nil {
		log.Printf("⚠️ Gagal membuat index penjualan: %v", err)
	}
	if err := repository.EnsureStockIndexes(); err != nil {
		log.Printf("⚠️ Gagal membuat index stok: %v", err)
	}

	// Counter autocode di-seed dari kode yang sudah ada
	if err := repository.InitializeCounters(); err != nil {
		log.Printf("⚠️ Peringatan: %v", err)
	} else {
		log.Println("✅ Counters berhasil diinisialisasi")
	}

	// Admin bawaan dibuat sebelum server menerima traffic
	if err := repository.SeedAdmin(); err != nil {
		log.Fatalf("❌ Gagal seed admin: %v", err)
	}

	// Subject token diverifikasi ulang ke koleksi users tiap request
	middleware.UserLookup = repository.GetUserByEmail

	app := fiber.New()

	// Middleware global
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(middleware.CorsMiddleware())

	// JWTMiddleware global, kecuali endpoint publik
	app.Use(func(c *fiber.Ctx) error {
		path := c.Path()
		if path == "/" || path == "/test" || path == "/api/auth/login" || strings.HasPrefix(path, "/swagger") {
			return c.Next()
		}
		return middleware.JWTMiddleware(c)
	})

	// Swagger route
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.SetupRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("🚀 Server jalan di http://localhost:" + port)
	log.Fatal(app.Listen(":" + port))
}
