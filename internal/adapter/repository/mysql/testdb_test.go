package mysql

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	approvalDomain "puda-approval-backend/internal/domain/approval"
	notificationDomain "puda-approval-backend/internal/domain/notification"
	requestDomain "puda-approval-backend/internal/domain/request"
	taskDomain "puda-approval-backend/internal/domain/task"
	userDomain "puda-approval-backend/internal/domain/user"
)

// openTestDB creates an in-memory sqlite DB with the full schema. The domain
// models carry no engine-specific column types (no enums), so they migrate
// cleanly on sqlite and the tests exercise the exact structs production uses.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&requestDomain.Request{},
		&approvalDomain.Record{},
		&taskDomain.Task{},
		&notificationDomain.Notification{},
		&userDomain.User{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedRequest(t *testing.T, db *gorm.DB, code string, ty requestDomain.Type) *requestDomain.Request {
	t.Helper()
	req := &requestDomain.Request{
		RequestCode:          code,
		Type:                 ty,
		RequesterID:          9,
		Title:                "Acquire Northwind",
		TargetEntity:         "Northwind Traders",
		Amount:               2500000,
		Status:               requestDomain.StatusDraft,
		CurrentApprovalCycle: 1,
	}
	if err := db.Create(req).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}
	return req
}
