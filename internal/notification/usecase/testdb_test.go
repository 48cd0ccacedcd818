package usecase

import (
	"errors"
	"testing"
	"time"

	authdomain "todo-backend/internal/auth/domain"
	authrepo "todo-backend/internal/auth/repository"
	"todo-backend/internal/notification/domain"
	"todo-backend/internal/notification/repository"
	taskdomain "todo-backend/internal/task/domain"
	taskrepo "todo-backend/internal/task/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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
		&taskdomain.Category{},
		&taskdomain.Tag{},
		&taskdomain.Task{},
		&taskdomain.TaskShare{},
		&domain.NotificationPreference{},
		&domain.TaskNotification{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type sentMail struct {
	to      string
	subject string
	body    string
}

// fakeMailer records sends and optionally fails every one of them
type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fixture struct {
	db         *gorm.DB
	users      authrepo.UserRepository
	tasks      taskrepo.TaskRepository
	prefs      repository.PreferenceRepository
	notifs     repository.NotificationRepository
	mailer     *fakeMailer
	scheduler  *Scheduler
	dispatcher *Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	users := authrepo.NewUserRepository(db)
	tasks := taskrepo.NewTaskRepository(db)
	prefs := repository.NewPreferenceRepository(db)
	notifs := repository.NewNotificationRepository(db)
	m := &fakeMailer{}
	return &fixture{
		db:         db,
		users:      users,
		tasks:      tasks,
		prefs:      prefs,
		notifs:     notifs,
		mailer:     m,
		scheduler:  NewScheduler(prefs, notifs),
		dispatcher: NewDispatcher(notifs, tasks, users, m),
	}
}

func (f *fixture) user(t *testing.T, username, email string) *authdomain.User {
	t.Helper()
	u := &authdomain.User{Username: username, Email: email}
	if err := f.users.Create(u); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func (f *fixture) task(t *testing.T, ownerID, title string, due *time.Time) *taskdomain.Task {
	t.Helper()
	task := &taskdomain.Task{Title: title, UserID: ownerID, Priority: taskdomain.PriorityMedium, DueDate: due}
	if err := f.tasks.Create(task); err != nil {
		t.Fatalf("create task %s: %v", title, err)
	}
	return task
}

// pending inserts a PENDING row directly, bypassing the scheduler
func (f *fixture) pending(t *testing.T, taskID, userID string, at time.Time) *domain.TaskNotification {
	t.Helper()
	n := &domain.TaskNotification{
		TaskID:        taskID,
		UserID:        userID,
		ScheduledTime: at,
		Status:        domain.StatusPending,
	}
	if err := f.notifs.Create(n); err != nil {
		t.Fatalf("create notification: %v", err)
	}
	return n
}

func (f *fixture) notificationsFor(t *testing.T, taskID string) []*domain.TaskNotification {
	t.Helper()
	var rows []*domain.TaskNotification
	if err := f.db.Where("task_id = ?", taskID).Order("scheduled_time ASC").Find(&rows).Error; err != nil {
		t.Fatalf("load notifications: %v", err)
	}
	return rows
}

func timeptr(t time.Time) *time.Time { return &t }

var errMailDown = errors.New("smtp connect refused")
