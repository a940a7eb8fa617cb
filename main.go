package main

import (
	"context"
	"log"
	"net/http"
	"time"
	"vrukshaAdmin/api"
	"vrukshaAdmin/config"
	"vrukshaAdmin/handlers"
	"vrukshaAdmin/repository"
	"vrukshaAdmin/services"
	"vrukshaAdmin/templates"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	initRedis(cfg)
	defer rdb.Close()

	client, err := api.NewClient(cfg.APIBaseURL)
	if err != nil {
		panic(err)
	}
	sR, err := repository.NewSessionRepository(rdb, cfg.SessionTTL)
	if err != nil {
		panic(err)
	}
	log.Printf("redis connected")
	tpl, err := templates.Parse()
	if err != nil {
		panic(err)
	}

	hp := handlers.HandlerParams{
		AuthService:  services.NewAuthService(client),
		CatsService:  services.NewCategoryService(client),
		PrdService:   services.NewProductService(client),
		OrdService:   services.NewOrderService(client),
		PayService:   services.NewPaymentService(client),
		SldService:   services.NewSliderService(client),
		UsrService:   services.NewUserService(client),
		StatsService: services.NewStatsService(client),
		Sessions:     sR,
		Templates:    tpl,
	}
	ha := handlers.NewHandler(hp)
	router := mux.NewRouter()
	router.Use(ha.ErrorHandleMiddleware)
	subAuth := router.NewRoute().Subrouter()
	subAuth.Use(ha.AuthMiddleware)

	router.HandleFunc("/login", ha.LoginPage).Methods("GET")
	router.HandleFunc("/login", ha.Login).Methods("POST")
	subAuth.HandleFunc("/logout", ha.Logout).Methods("POST")

	subAuth.HandleFunc("/", ha.Home)
	subAuth.HandleFunc("/dashboard", ha.Dashboard).Methods("GET")

	subAuth.HandleFunc("/categories", ha.Categories).Methods("GET")
	subAuth.HandleFunc("/categories", ha.CreateCategory).Methods("POST")
	subAuth.HandleFunc("/categories/new", ha.CategoryNew).Methods("GET")
	subAuth.HandleFunc("/categories/{id}/edit", ha.CategoryEdit).Methods("GET")
	subAuth.HandleFunc("/categories/{id}", ha.UpdateCategory).Methods("POST")
	subAuth.HandleFunc("/categories/{id}/delete", ha.CategoryConfirmDelete).Methods("GET")
	subAuth.HandleFunc("/categories/{id}/delete", ha.DeleteCategory).Methods("POST")

	subAuth.HandleFunc("/products", ha.Products).Methods("GET")
	subAuth.HandleFunc("/products", ha.CreateProduct).Methods("POST")
	subAuth.HandleFunc("/products/new", ha.ProductNew).Methods("GET")
	subAuth.HandleFunc("/products/{id}/edit", ha.ProductEdit).Methods("GET")
	subAuth.HandleFunc("/products/{id}", ha.UpdateProduct).Methods("POST")
	subAuth.HandleFunc("/products/{id}/delete", ha.ProductConfirmDelete).Methods("GET")
	subAuth.HandleFunc("/products/{id}/delete", ha.DeleteProduct).Methods("POST")

	subAuth.HandleFunc("/orders", ha.Orders).Methods("GET")
	subAuth.HandleFunc("/orders/{id}", ha.OrderDetails).Methods("GET")
	subAuth.HandleFunc("/orders/{id}/status", ha.UpdateOrderStatus).Methods("POST")
	subAuth.HandleFunc("/orders/{id}/cancel", ha.CancelOrder).Methods("POST")
	subAuth.HandleFunc("/orders/{id}/recurring/cancel", ha.CancelRecurringOrder).Methods("POST")
	subAuth.HandleFunc("/orders/{id}/record-payment", ha.RecordPayment).Methods("POST")

	subAuth.HandleFunc("/payments", ha.Payments).Methods("GET")
	subAuth.HandleFunc("/payments/{id}/cod-status", ha.UpdateCODPaymentStatus).Methods("POST")

	subAuth.HandleFunc("/sliders", ha.Sliders).Methods("GET")
	subAuth.HandleFunc("/sliders", ha.CreateSlider).Methods("POST")
	subAuth.HandleFunc("/sliders/new", ha.SliderNew).Methods("GET")
	subAuth.HandleFunc("/sliders/{id}/delete", ha.SliderConfirmDelete).Methods("GET")
	subAuth.HandleFunc("/sliders/{id}/delete", ha.DeleteSlider).Methods("POST")

	subAuth.HandleFunc("/users", ha.Users).Methods("GET")

	log.Printf("starting server on %s", cfg.ListenAddr)
	http.ListenAndServe(cfg.ListenAddr, router)
}

func initRedis(cfg config.Config) {
	rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: "",
		DB:       0,
	})
	ctx, cncl := context.WithTimeout(context.Background(), 5*time.Second)
	defer cncl()
	if status := rdb.Ping(ctx); status.Err() != nil {
		panic("redis is not working: " + status.Err().Error())
	}
}
