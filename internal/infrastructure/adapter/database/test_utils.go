package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestEpoch is the starting reading of the test clock
var TestEpoch = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// TestDBManager provides utilities for testing against a migrated SQLite database
type TestDBManager struct {
	Manager *Manager
	Config  *Config
	Logger  coreport.Logger
	Clock   *timeprovider.SteppingTimeProvider
	UoW     persistence.UnitOfWork
}

// NewTestDBManager opens a fresh SQLite file under t.TempDir, migrates it and
// registers cleanup. The clock advances one second per reading.
func NewTestDBManager(t *testing.T) *TestDBManager {
	t.Helper()

	clock := timeprovider.NewSteppingTimeProvider(TestEpoch, time.Second)
	log := logger.NewNoopLogger()

	config := DefaultConfig()
	config.Driver = DriverSQLite
	config.Path = filepath.Join(t.TempDir(), "ledger.db")
	config.LogLevel = "silent"
	config.RetryAttempts = 1
	config.MaxOpenConns = 4
	config.MaxIdleConns = 4
	config.TxRetryAttempts = 0

	manager := NewManager(config, log, clock)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager: manager,
		Config:  config,
		Logger:  log,
		Clock:   clock,
		UoW:     manager.CreateUnitOfWork(),
	}
}

// DB returns the underlying GORM handle
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// CreateTestUser inserts a user whose balance is backed by one top-up entry,
// so the ledger stays consistent from the start
func (m *TestDBManager) CreateTestUser(t *testing.T, name string, role entity.Role, balance, negativeLimit int64) uint64 {
	t.Helper()

	now := m.Clock.Now()
	user := model.User{
		Name:                 name,
		Role:                 string(role),
		Balance:              balance,
		NegativeBalanceLimit: negativeLimit,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := m.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	if balance != 0 {
		entry := model.Transaction{
			UserID:      user.ID,
			Amount:      balance,
			Type:        string(entity.TxTopUp),
			Description: "Opening balance",
			CreatedAt:   now,
		}
		if err := m.DB().Create(&entry).Error; err != nil {
			t.Fatalf("Failed to create opening balance: %v", err)
		}
	}

	return user.ID
}

// CreateTestEvent inserts an open event starting start, created by createdBy
func (m *TestDBManager) CreateTestEvent(t *testing.T, title string, maxPlayers int, price int64, start time.Time, createdBy uint64) uint64 {
	t.Helper()

	now := m.Clock.Now()
	event := model.Event{
		Title:          title,
		StartsAt:       start,
		MaxPlayers:     maxPlayers,
		PricePerPerson: price,
		Status:         string(entity.EventOpen),
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := m.DB().Create(&event).Error; err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return event.ID
}

// UpdateEventColumns patches raw event columns, for limits and cutoffs
func (m *TestDBManager) UpdateEventColumns(t *testing.T, eventID uint64, columns map[string]any) {
	t.Helper()

	if err := m.DB().Model(&model.Event{}).Where("id = ?", eventID).Updates(columns).Error; err != nil {
		t.Fatalf("Failed to update test event: %v", err)
	}
}

// Balance reads a user's stored balance
func (m *TestDBManager) Balance(t *testing.T, userID uint64) int64 {
	t.Helper()

	var user model.User
	if err := m.DB().First(&user, userID).Error; err != nil {
		t.Fatalf("Failed to read user %d: %v", userID, err)
	}
	return user.Balance
}

// LedgerDrift returns, per user, balance minus the sum of their entries.
// An empty map means every balance equals its ledger.
func (m *TestDBManager) LedgerDrift(t *testing.T) map[uint64]int64 {
	t.Helper()

	var rows []struct {
		ID      uint64
		Balance int64
		Total   int64
	}
	err := m.DB().Raw(`
		SELECT u.id, u.balance, COALESCE(SUM(t.amount), 0) AS total
		FROM users u LEFT JOIN transactions t ON t.user_id = u.id
		GROUP BY u.id, u.balance`).Scan(&rows).Error
	if err != nil {
		t.Fatalf("Failed to compute ledger drift: %v", err)
	}

	drift := make(map[uint64]int64)
	for _, r := range rows {
		if r.Balance != r.Total {
			drift[r.ID] = r.Balance - r.Total
		}
	}
	return drift
}

// Statuses returns the registration status per user for an event
func (m *TestDBManager) Statuses(t *testing.T, eventID uint64) map[uint64]entity.RegistrationStatus {
	t.Helper()

	var regs []model.Registration
	if err := m.DB().Where("event_id = ?", eventID).Find(&regs).Error; err != nil {
		t.Fatalf("Failed to list registrations: %v", err)
	}

	statuses := make(map[uint64]entity.RegistrationStatus, len(regs))
	for _, r := range regs {
		statuses[r.UserID] = entity.RegistrationStatus(r.Status)
	}
	return statuses
}

// Transactions returns every ledger entry of a user, oldest first
func (m *TestDBManager) Transactions(t *testing.T, userID uint64) []model.Transaction {
	t.Helper()

	var entries []model.Transaction
	if err := m.DB().Where("user_id = ?", userID).Order("id ASC").Find(&entries).Error; err != nil {
		t.Fatalf("Failed to list transactions: %v", err)
	}
	return entries
}

// CreateTestRegistration inserts a registration row directly, bypassing placement
func (m *TestDBManager) CreateTestRegistration(t *testing.T, eventID, userID uint64, status entity.RegistrationStatus, registeredBy *uint64) uint64 {
	t.Helper()

	now := m.Clock.Now()
	reg := model.Registration{
		EventID:      eventID,
		UserID:       userID,
		Status:       string(status),
		RegisteredBy: registeredBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := m.DB().Create(&reg).Error; err != nil {
		t.Fatalf("Failed to create test registration: %v", err)
	}
	return reg.ID
}

// CreateTestDeposit gives a user an active deposit without touching their balance
func (m *TestDBManager) CreateTestDeposit(t *testing.T, userID uint64) uint64 {
	t.Helper()

	deposit := model.Deposit{
		UserID:    userID,
		Amount:    5000,
		Status:    string(entity.DepositActive),
		CreatedBy: userID,
		CreatedAt: m.Clock.Now(),
	}
	if err := m.DB().Create(&deposit).Error; err != nil {
		t.Fatalf("Failed to create test deposit: %v", err)
	}
	return deposit.ID
}

// CreateTestPermission inserts a family permission requester -> target
func (m *TestDBManager) CreateTestPermission(t *testing.T, requesterID, targetID uint64, status entity.PermissionStatus, canPay bool) uint64 {
	t.Helper()

	now := m.Clock.Now()
	perm := model.FamilyPermission{
		RequesterID: requesterID,
		TargetID:    targetID,
		Status:      string(status),
		CanPay:      canPay,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := m.DB().Create(&perm).Error; err != nil {
		t.Fatalf("Failed to create test permission: %v", err)
	}
	return perm.ID
}

// SetPayForFamily flips a user's pay-for-family preference
func (m *TestDBManager) SetPayForFamily(t *testing.T, userID uint64, enabled bool) {
	t.Helper()

	if err := m.DB().Model(&model.User{}).Where("id = ?", userID).Update("pay_for_family_members", enabled).Error; err != nil {
		t.Fatalf("Failed to update pay-for-family: %v", err)
	}
}

// EventStatus reads an event's stored status
func (m *TestDBManager) EventStatus(t *testing.T, eventID uint64) entity.EventStatus {
	t.Helper()

	var event model.Event
	if err := m.DB().First(&event, eventID).Error; err != nil {
		t.Fatalf("Failed to read event %d: %v", eventID, err)
	}
	return entity.EventStatus(event.Status)
}

// CountRegisteredByStatus counts an event's rows in one status
func (m *TestDBManager) CountRegisteredByStatus(t *testing.T, eventID uint64, status entity.RegistrationStatus) int64 {
	t.Helper()

	var n int64
	if err := m.DB().Model(&model.Registration{}).Where("event_id = ? AND status = ?", eventID, status).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count registrations: %v", err)
	}
	return n
}
