package usecase

import (
	"testing"

	authdomain "todo-backend/internal/auth/domain"
	authrepo "todo-backend/internal/auth/repository"
	"todo-backend/internal/task/domain"
	"todo-backend/internal/task/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory store with the same schema and error
// translation the application uses.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&authdomain.User{},
		&domain.Category{},
		&domain.Tag{},
		&domain.Task{},
		&domain.TaskShare{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type fixture struct {
	db      *gorm.DB
	users   authrepo.UserRepository
	tasks   repository.TaskRepository
	shares  repository.ShareRepository
	tags    repository.TagRepository
	taskUc  TaskUsecase
	shareUc ShareUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	users := authrepo.NewUserRepository(db)
	tasks := repository.NewTaskRepository(db)
	shares := repository.NewShareRepository(db)
	tags := repository.NewTagRepository(db)
	return &fixture{
		db:      db,
		users:   users,
		tasks:   tasks,
		shares:  shares,
		tags:    tags,
		taskUc:  NewTaskUsecase(tasks, shares, tags),
		shareUc: NewShareUsecase(tasks, shares, users),
	}
}

func (f *fixture) user(t *testing.T, username string) *authdomain.User {
	t.Helper()
	u := &authdomain.User{Username: username, Email: username + "@example.com"}
	if err := f.users.Create(u); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func (f *fixture) task(t *testing.T, ownerID, title string) *domain.Task {
	t.Helper()
	task := &domain.Task{Title: title, UserID: ownerID, Priority: domain.PriorityMedium}
	if err := f.tasks.Create(task); err != nil {
		t.Fatalf("create task %s: %v", title, err)
	}
	return task
}
