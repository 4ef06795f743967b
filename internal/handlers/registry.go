package handlers

// AppHandlers собирает все хэндлеры приложения для регистрации маршрутов
type AppHandlers struct {
	AuthHandler        *AuthHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
}
