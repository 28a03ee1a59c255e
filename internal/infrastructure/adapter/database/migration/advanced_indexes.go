package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	statements := []struct {
		name string
		ddl  string
	}{
		{"idx_registrations_live", `CREATE INDEX IF NOT EXISTS idx_registrations_live
			ON registrations (event_id, created_at, id)
			WHERE status IN ('registered', 'waitlist')`},
		{"idx_family_permissions_accepted", `CREATE INDEX IF NOT EXISTS idx_family_permissions_accepted
			ON family_permissions (requester_id, target_id)
			WHERE status = 'accepted'`},
		// BRIN suits the append-only ledger log
		{"idx_transactions_created_at_brin", `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`},
		{"idx_transactions_reference", `CREATE INDEX IF NOT EXISTS idx_transactions_reference
			ON transactions (reference_id, type)`},
	}

	for _, s := range statements {
		if err := m.db.WithContext(ctx).Exec(s.ddl).Error; err != nil {
			m.logger.Error("Failed to create advanced index", map[string]any{
				"index": s.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage tweaks. Failures are logged, not returned.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// users.balance and registrations.status are rewritten in place constantly
	for _, table := range []string{"users", "registrations", "events"} {
		if err := m.db.WithContext(ctx).Exec("ALTER TABLE " + table + " SET (fillfactor = 90)").Error; err != nil {
			m.logger.Warn("Failed to set fillfactor", map[string]any{
				"table": table,
				"error": err.Error(),
			})
		}
	}

	if err := m.db.WithContext(ctx).Exec(`
		ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000
	`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_id", map[string]any{
			"error": err.Error(),
		})
	}
}
