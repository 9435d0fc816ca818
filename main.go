package main

import (
	"log"
	"net/http"
	"os"

	"github.com/karnaval-obuv/shop/app/cmd"
	"github.com/karnaval-obuv/shop/app/configs"
	"github.com/karnaval-obuv/shop/app/routes"
)

func main() {
	env := configs.LoadEnv()

	if len(os.Args) > 1 {
		cmd.RunCli(env)
		return
	}

	if env.SecretKey == "" {
		log.Fatal("SECRET_KEY is empty! Run `generate-key` and add it to your .env file.")
	}
	if env.AdminUsername == "" || (env.AdminPassword == "" && env.AdminPasswordHash == "") {
		log.Fatal("Admin credentials are not configured! Set ADMIN_USERNAME and ADMIN_PASSWORD (or ADMIN_PASSWORD_HASH).")
	}

	db, err := configs.OpenConnection(env)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	router := routes.NewRouter(db, env)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped:", err)
	}
}
