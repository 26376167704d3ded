package main

import (
	"log"
	"net/http"
	"os"

	"coffee-commerce/app/cmd"
	"coffee-commerce/app/configs"
	"coffee-commerce/app/routes"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	router, err := routes.NewRouter(db, env)
	if err != nil {
		log.Fatal("failed to build router:", err)
	}

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
