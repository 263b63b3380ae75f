package cetane

// Executor is called once per emitted DDL statement. Statements are
// independent; callers must not assume batching across calls.
type Executor func(sql string) error

// TxCallback is the shape of the begin/commit/rollback hooks passed to
// MigrateForwardWithTransactions.
type TxCallback func() error

// Migrator drives forward/backward application of a Registry's
// migrations against a pluggable MigrationStateStore, delegating actual
// SQL execution to a caller-supplied Executor. It holds no connection of
// its own and performs no internal locking; callers that need exclusive
// access across processes must arrange it themselves (e.g. a database
// advisory lock obtained before invoking the migrator).
type Migrator struct {
	registry *Registry
	backend  Backend
	state    MigrationStateStore
	logger   Logger
}

// NewMigrator builds a Migrator over a Registry, Backend and state store.
func NewMigrator(registry *Registry, backend Backend, state MigrationStateStore) *Migrator {
	return &Migrator{registry: registry, backend: backend, state: state}
}

// WithLogger attaches an optional structured logging sink.
func (m *Migrator) WithLogger(logger Logger) *Migrator {
	m.logger = logger
	return m
}

func (m *Migrator) appliedSet() (map[string]bool, error) {
	names, err := m.state.AppliedMigrations()
	if err != nil {
		return nil, stateStoreErr(err)
	}
	applied := make(map[string]bool, len(names))
	for _, n := range names {
		applied[n] = true
	}
	return applied, nil
}

// MigrateForward resolves the dependency order, skips already-applied
// migrations, and for each remaining migration emits every operation's
// forward SQL to exec before marking it applied.
func (m *Migrator) MigrateForward(exec Executor) error {
	order, err := m.registry.ResolveOrder()
	if err != nil {
		return err
	}
	applied, err := m.appliedSet()
	if err != nil {
		return err
	}

	ctx := NewGenContext(m.logger)
	for _, mig := range order {
		if applied[mig.Name] {
			replayForContext(ctx, mig, m.backend)
			continue
		}
		if err := m.applyMigration(ctx, mig, exec); err != nil {
			return err
		}
		if err := m.state.MarkApplied(mig.Name); err != nil {
			return stateStoreErr(err)
		}
	}
	return nil
}

// replayForContext re-lowers an already-applied migration's operations
// purely to keep GenContext's table-shape tracking in sync, without
// emitting SQL to any executor. This lets MigrateForward start from a
// partially-applied state and still have correct shapes available for
// later AlterField SQLite recreations.
func replayForContext(ctx *GenContext, mig *Migration, backend Backend) {
	for _, op := range mig.Operations {
		_, _ = op.ForwardSQL(ctx, backend)
	}
}

func (m *Migrator) applyMigration(ctx *GenContext, mig *Migration, exec Executor) error {
	for _, op := range mig.Operations {
		stmts, err := op.ForwardSQL(ctx, m.backend)
		if err != nil {
			return err
		}
		for _, sql := range stmts {
			if err := exec(sql); err != nil {
				return executorErr(err)
			}
		}
	}
	return nil
}

// MigrateBackward rolls back all applied migrations after target (in
// resolved order), or all applied migrations if target is nil, in reverse
// resolved order. Every migration to be rolled back must be reversible;
// this is checked up front, before any SQL executes.
func (m *Migrator) MigrateBackward(target *string, exec Executor) error {
	order, err := m.registry.ResolveOrder()
	if err != nil {
		return err
	}
	applied, err := m.appliedSet()
	if err != nil {
		return err
	}

	toRollback, ctx, err := m.planRollback(order, applied, target)
	if err != nil {
		return err
	}

	for i := len(toRollback) - 1; i >= 0; i-- {
		mig := toRollback[i]
		reverseOps := mig.reverseOperations()
		for _, op := range reverseOps {
			stmts, err := op.ForwardSQL(ctx, m.backend)
			if err != nil {
				return err
			}
			for _, sql := range stmts {
				if err := exec(sql); err != nil {
					return executorErr(err)
				}
			}
		}
		if err := m.state.MarkUnapplied(mig.Name); err != nil {
			return stateStoreErr(err)
		}
	}
	return nil
}

// planRollback determines which applied migrations (in resolved order)
// sit after target, validates up-front that each is reversible, and
// returns a GenContext replayed through every applied migration so
// rollback SQL generation (e.g. SQLite recreate) sees the current shapes.
func (m *Migrator) planRollback(order []*Migration, applied map[string]bool, target *string) ([]*Migration, *GenContext, error) {
	ctx := NewGenContext(m.logger)
	var toRollback []*Migration
	pastTarget := target == nil

	for _, mig := range order {
		if !applied[mig.Name] {
			continue
		}
		if target != nil && mig.Name == *target {
			pastTarget = true
			replayForContext(ctx, mig, m.backend)
			continue
		}
		if pastTarget {
			toRollback = append(toRollback, mig)
		} else {
			replayForContext(ctx, mig, m.backend)
		}
	}

	for _, mig := range toRollback {
		for opIdx, op := range mig.Operations {
			if _, ok := op.Reverse(); !ok {
				return nil, nil, notReversibleErr(mig.Name, opIdx)
			}
		}
	}

	for _, mig := range toRollback {
		replayForContext(ctx, mig, m.backend)
	}

	return toRollback, ctx, nil
}

// MigrateForwardWithTransactions behaves like MigrateForward, but wraps
// each migration whose Atomic flag is true and whose backend supports
// transactional DDL in a begin/commit pair, invoking rollback and
// aborting on the first executor error inside that pair.
func (m *Migrator) MigrateForwardWithTransactions(exec Executor, begin, commit, rollback TxCallback) error {
	order, err := m.registry.ResolveOrder()
	if err != nil {
		return err
	}
	applied, err := m.appliedSet()
	if err != nil {
		return err
	}

	ctx := NewGenContext(m.logger)
	caps := m.backend.Capabilities()

	for _, mig := range order {
		if applied[mig.Name] {
			replayForContext(ctx, mig, m.backend)
			continue
		}

		transactional := mig.Atomic && caps.TransactionalDDL
		if transactional {
			if err := begin(); err != nil {
				return executorErr(err)
			}
		}

		if err := m.applyMigration(ctx, mig, exec); err != nil {
			if transactional {
				_ = rollback()
			}
			return err
		}

		if transactional {
			if err := commit(); err != nil {
				_ = rollback()
				return executorErr(err)
			}
		}

		if err := m.state.MarkApplied(mig.Name); err != nil {
			return stateStoreErr(err)
		}
	}
	return nil
}
