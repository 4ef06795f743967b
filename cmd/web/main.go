package main

import (
	"jobportal_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// .env опционален: в контейнере конфиг приходит из окружения
	_ = godotenv.Load()

	app.Run()
}
