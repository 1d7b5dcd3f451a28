package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/agrilink/farm-market-backend/internal/address"
	"github.com/agrilink/farm-market-backend/internal/cart"
	"github.com/agrilink/farm-market-backend/internal/category"
	"github.com/agrilink/farm-market-backend/internal/config"
	"github.com/agrilink/farm-market-backend/internal/geocode"
	"github.com/agrilink/farm-market-backend/internal/market"
	"github.com/agrilink/farm-market-backend/internal/notify"
	"github.com/agrilink/farm-market-backend/internal/order"
	"github.com/agrilink/farm-market-backend/internal/predict"
	"github.com/agrilink/farm-market-backend/internal/product"
	"github.com/agrilink/farm-market-backend/internal/user"
	"github.com/agrilink/farm-market-backend/internal/weather"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	bootstrapSchema(db)

	rdb := mustOpenRedis(cfg.RedisURL)
	defer rdb.Close()

	// user service is shared with nothing else; orders key on the JWT claims
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService)
	seedProducts(db, productRepo)

	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db)))

	cartService := cart.NewService(cart.NewRedisRepository(rdb))
	cartHandler := cart.NewHandler(cartService)

	// one SMS relay, gateway chosen by configuration
	sms := selectSMSGateway(cfg)
	email := notify.NewEmailJSSender(cfg.EmailJSServiceID, cfg.EmailJSTemplateID, cfg.EmailJSUserID)
	notifyHandler := notify.NewHandler(sms, email)

	orderService := order.NewService(order.NewPostgresRepository(db), sms, email)
	orderHandler := order.NewHandler(orderService, cartService)

	geocodeHandler := geocode.NewHandler(geocode.NewNominatimClient(cfg.GeocodeBaseURL))
	predictHandler := predict.NewHandler(predict.NewService(predict.NewClient(cfg.PredictAPIURL)))
	weatherHandler := weather.NewHandler(weather.NewClient(cfg.WeatherBaseURL))
	marketHandler := market.NewHandler(market.NewClient(cfg.MarketAPIURL, cfg.MarketAPIKey))

	addressHandler := address.NewHandler(address.NewService(address.NewPostgresRepository(db)))

	// public surface
	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	predictHandler.RegisterPublicRoutes(app)
	weatherHandler.RegisterPublicRoutes(app)
	marketHandler.RegisterPublicRoutes(app)
	notifyHandler.RegisterPublicRoutes(app)

	// everything registered below requires a valid token
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	geocodeHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	addressHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func mustOpenDB(databaseURL string) *sql.DB {
	if databaseURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func mustOpenRedis(redisURL string) *redis.Client {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		panic(err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		panic(err)
	}
	return client
}

func selectSMSGateway(cfg config.Config) notify.SMSGateway {
	switch cfg.SMSProvider {
	case "secondary":
		return notify.NewMSG91Gateway(cfg.MSG91AuthKey, cfg.MSG91Sender)
	default:
		return notify.NewFast2SMSGateway(cfg.Fast2SMSKey)
	}
}

func bootstrapSchema(db *sql.DB) {
	// orders table: one row per purchased line-item, location stored as jsonb
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS orders (
        "orderId" TEXT PRIMARY KEY,
        "buyerId" INT NOT NULL,
        "buyerName" TEXT NOT NULL,
        "buyerContact" TEXT NOT NULL,
        "buyerAddress" TEXT NOT NULL,
        "paymentMethod" TEXT NOT NULL,
        crop TEXT NOT NULL,
        farmer TEXT NOT NULL DEFAULT 'Unknown',
        location jsonb,
        status TEXT NOT NULL DEFAULT 'Pending',
        transport TEXT NOT NULL DEFAULT 'Not Assigned',
        "createdAt" TEXT NOT NULL
    )`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS users (
        "userId" SERIAL PRIMARY KEY,
        email TEXT NOT NULL UNIQUE,
        password TEXT NOT NULL,
        name TEXT NOT NULL,
        phone TEXT,
        "userType" TEXT NOT NULL,
        "mainAddressId" INT,
        "createdAt" TEXT,
        "updatedAt" TEXT
    )`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS products (
        "productId" SERIAL PRIMARY KEY,
        name TEXT NOT NULL,
        "unitPrice" TEXT NOT NULL,
        category TEXT NOT NULL,
        "imageRef" TEXT,
        description TEXT,
        farmer TEXT,
        "createdAt" TEXT,
        "updatedAt" TEXT
    )`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS category ("categoryID" SERIAL PRIMARY KEY, "categoryName" TEXT, "categoryNameHI" TEXT, "categoryImg" TEXT, ord INT)`); err != nil {
		panic(err)
	}
	seedCategories(db)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS address (
        "addressID" SERIAL PRIMARY KEY,
        "userID" INT NOT NULL,
        "addressDesc" TEXT,
        phone TEXT,
        "addressName" TEXT,
        "createdAt" TEXT,
        "updatedAt" TEXT
    )`); err != nil {
		panic(err)
	}
}

func seedCategories(db *sql.DB) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM category`).Scan(&count); err != nil || count > 0 {
		return
	}
	seed := category.DefaultSeed()
	for i, s := range seed {
		if _, err := db.Exec(`INSERT INTO category ("categoryName", "categoryNameHI", "categoryImg", ord) VALUES ($1,$2,$3,$4)`,
			s.Name, s.NameHI, s.Img, len(seed)-i); err != nil {
			continue
		}
	}
}

func seedProducts(db *sql.DB, repo *product.PostgresRepository) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil || count > 0 {
		return
	}
	if err := repo.Reset(product.Catalog()); err != nil {
		fmt.Printf("warning: could not seed product catalog: %v\n", err)
		return
	}
	// keep the sequence ahead of the seeded ids
	if _, err := db.Exec(`SELECT setval(pg_get_serial_sequence('products', 'productId'), (SELECT MAX("productId") FROM products))`); err != nil {
		fmt.Printf("warning: could not advance product sequence: %v\n", err)
	}
}
