package main

import (
	"log"

	api "todo-backend/cmd/api"
	authdomain "todo-backend/internal/auth/domain"
	authRepo "todo-backend/internal/auth/repository"
	authUsecase "todo-backend/internal/auth/usecase"
	notifdomain "todo-backend/internal/notification/domain"
	notifRepo "todo-backend/internal/notification/repository"
	notifScheduler "todo-backend/internal/notification/scheduler"
	notifUsecase "todo-backend/internal/notification/usecase"
	taskdomain "todo-backend/internal/task/domain"
	taskRepo "todo-backend/internal/task/repository"
	taskUsecase "todo-backend/internal/task/usecase"
	"todo-backend/pkg/config"
	"todo-backend/pkg/database"
	"todo-backend/pkg/mailer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&taskdomain.Category{},
		&taskdomain.Tag{},
		&taskdomain.Task{},
		&taskdomain.TaskShare{},
		&notifdomain.NotificationPreference{},
		&notifdomain.TaskNotification{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewTaskRepository(db)
	shareRepository := taskRepo.NewShareRepository(db)
	categoryRepository := taskRepo.NewCategoryRepository(db)
	tagRepository := taskRepo.NewTagRepository(db)
	preferenceRepository := notifRepo.NewPreferenceRepository(db)
	notificationRepository := notifRepo.NewNotificationRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository, shareRepository, tagRepository)
	shareUsecaseInstance := taskUsecase.NewShareUsecase(taskRepository, shareRepository, userRepository)
	categoryUsecaseInstance := taskUsecase.NewCategoryUsecase(categoryRepository)
	tagUsecaseInstance := taskUsecase.NewTagUsecase(tagRepository)
	notificationUsecaseInstance := notifUsecase.NewNotificationUsecase(notificationRepository, preferenceRepository, taskRepository)

	// Wire the due-date notification hook into task mutations
	scheduler := notifUsecase.NewScheduler(preferenceRepository, notificationRepository)
	taskUsecaseInstance.SetNotificationScheduler(scheduler)

	// Start the dispatch loop
	smtpMailer := mailer.NewSMTPMailer(cfg)
	dispatcher := notifUsecase.NewDispatcher(notificationRepository, taskRepository, userRepository, smtpMailer)
	runner := notifScheduler.NewRunner(dispatcher, cfg.DispatchInterval)
	runner.Start()
	defer runner.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(
		authUsecaseInstance,
		taskUsecaseInstance,
		shareUsecaseInstance,
		categoryUsecaseInstance,
		tagUsecaseInstance,
		notificationUsecaseInstance,
	)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
