package routes

import (
	"net/http"

	"coffee-commerce/app/configs"
	"coffee-commerce/app/handlers"
	"coffee-commerce/app/middlewares"
	"coffee-commerce/app/repositories"
	"coffee-commerce/app/services"
	"coffee-commerce/app/utils/renderer"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV) (*mux.Router, error) {
	rnd := renderer.New()

	fileStorage, err := services.NewLocalFileStorage(env.UploadDir)
	if err != nil {
		return nil, err
	}

	memberRepo := repositories.NewMemberRepository(db)
	productRepo := repositories.NewProductRepository(db)
	imageRepo := repositories.NewProductImageRepository(db)
	optionRepo := repositories.NewProductOptionRepository(db)
	variantRepo := repositories.NewProductVariantRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)

	memberSvc := services.NewMemberService(db, memberRepo)
	productSvc := services.NewProductService(db, productRepo, imageRepo, optionRepo, variantRepo, fileStorage)
	orderSvc := services.NewOrderService(db, orderRepo, orderItemRepo, memberRepo, variantRepo)

	memberHandler := handlers.NewMemberHandler(memberSvc, rnd)
	productHandler := handlers.NewProductHandler(productSvc, rnd)
	orderHandler := handlers.NewOrderHandler(orderSvc, rnd)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLogger)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/members", memberHandler.CreateMember).Methods("POST")
	api.HandleFunc("/members", memberHandler.GetMembers).Methods("GET")
	api.HandleFunc("/members/{id}", memberHandler.GetMember).Methods("GET")
	api.HandleFunc("/members/{id}", memberHandler.UpdateMember).Methods("PUT")
	api.HandleFunc("/members/{id}", memberHandler.DeleteMember).Methods("DELETE")

	api.HandleFunc("/products", productHandler.CreateProduct).Methods("POST")
	api.HandleFunc("/products", productHandler.GetProducts).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.UpdateProduct).Methods("PUT")
	api.HandleFunc("/products/{id}", productHandler.DeleteProduct).Methods("DELETE")

	api.HandleFunc("/orders", orderHandler.CreateOrder).Methods("POST")
	api.HandleFunc("/orders", orderHandler.GetOrders).Methods("GET")
	api.HandleFunc("/orders/{id}", orderHandler.GetOrder).Methods("GET")
	api.HandleFunc("/orders/{id}/status", orderHandler.UpdateOrderStatus).Methods("PATCH")
	api.HandleFunc("/orders/{id}", orderHandler.DeleteOrder).Methods("DELETE")

	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(env.UploadDir))),
	)

	return router, nil
}
