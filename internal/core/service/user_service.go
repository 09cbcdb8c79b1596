package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/adminhub/user-management/internal/api/metrics"
	"github.com/adminhub/user-management/internal/core/domain"
	"github.com/adminhub/user-management/internal/core/ports"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	// Transient notifications auto-dismiss after this long.
	notifyDuration = 3 * time.Second

	minNameLength = 2
)

// Options tune UserService behavior.
type Options struct {
	// OptimisticToggle patches the in-memory entry after a status toggle
	// instead of reloading the whole collection. Off by default: the
	// reload strategy is the simpler consistency story.
	OptimisticToggle bool
}

// UserService orchestrates the user collection: load, filter, stats, and
// the mutation operations, each followed by a full reload from the store.
type UserService struct {
	repo       ports.UserRepository
	collection *Collection
	notifier   ports.Notifier
	audit      ports.AuditRecorder
	logger     zerolog.Logger
	opts       Options
}

func NewUserService(
	repo ports.UserRepository,
	notifier ports.Notifier,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
	opts Options,
) *UserService {
	return &UserService{
		repo:       repo,
		collection: NewCollection(),
		notifier:   notifier,
		audit:      audit,
		logger:     logger,
		opts:       opts,
	}
}

// Reload fetches all records and replaces the in-memory collection
// wholesale, recomputing aggregate stats. On failure the last-known list
// is retained and a transient notification is emitted; there is no
// automatic retry.
func (s *UserService) Reload(ctx context.Context) error {
	start := time.Now()
	users, err := s.repo.List(ctx)
	if err != nil {
		metrics.ReloadsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Msg("failed to load users")
		s.notifier.Notify(ctx, "Error loading users", notifyDuration)
		return fmt.Errorf("load users: %w", err)
	}

	s.collection.Replace(users)
	stats := s.collection.Stats()
	metrics.ReloadsTotal.WithLabelValues("success").Inc()
	metrics.ReloadDuration.Observe(time.Since(start).Seconds())
	metrics.RecordsActive.Set(float64(stats.Active))
	metrics.RecordsInactive.Set(float64(stats.Inactive))

	s.logger.Debug().Int("total", stats.Total).Msg("user collection reloaded")
	return nil
}

// List serves a page of the collection, optionally filtered. The filter is
// a client-side substring match over the loaded snapshot; it does not
// touch the store and does not reset the requested page.
func (s *UserService) List(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	matched := s.collection.Filter(input.Filter)

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	page := input.Page
	if page < 1 {
		page = 1
	}

	total := len(matched)
	totalPages := (total + limit - 1) / limit
	skip := (page - 1) * limit
	if skip > total {
		skip = total
	}
	end := skip + limit
	if end > total {
		end = total
	}

	return &ports.ListUsersResult{
		Items:      matched[skip:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Get retrieves a single record from the store.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrMissingID
	}
	return s.repo.FindByID(ctx, id)
}

// Stats returns the aggregate counts for the loaded collection.
func (s *UserService) Stats(ctx context.Context) (domain.Stats, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Stats{}, err
	}
	return s.collection.Stats(), nil
}

// Create validates and persists a new record, then reloads the collection.
// The duplicate check runs against the current snapshot before any store
// call; a duplicate name means no store call is made at all.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	if len([]rune(name)) < minNameLength {
		return nil, domain.ErrNameTooShort
	}
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}
	// The duplicate check validates against the loaded snapshot; an empty
	// never-loaded collection would wave every name through.
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	if domain.CheckDuplicate(s.collection.Names, input.Name, "") {
		metrics.DuplicateRejectionsTotal.Inc()
		return nil, domain.ErrDuplicateName
	}

	created, err := s.repo.Create(ctx, name, role, input.IsActive)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("create", "error").Inc()
		s.logger.Error().Err(err).Str("name", name).Msg("failed to add user")
		s.notifier.Notify(ctx, "Error adding user", notifyDuration)
		return nil, fmt.Errorf("add user: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("create", "success").Inc()
	s.afterMutation(ctx, "User added successfully")
	s.recordAudit(created.ID, created.Name, domain.AuditCreated, input.Actor)
	s.logger.Info().Str("id", created.ID).Str("name", created.Name).Msg("user added")
	return created, nil
}

// Update applies a partial patch to a record, then reloads. The duplicate
// check excludes the record's own current name so an unchanged name is
// never flagged against itself.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrMissingID
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := ports.UserPatch{IsActive: input.IsActive}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if len([]rune(name)) < minNameLength {
			return nil, domain.ErrNameTooShort
		}
		if err := s.ensureLoaded(ctx); err != nil {
			return nil, err
		}
		if domain.CheckDuplicate(s.collection.Names, *input.Name, current.Name) {
			metrics.DuplicateRejectionsTotal.Inc()
			return nil, domain.ErrDuplicateName
		}
		patch.Name = &name
	}
	if input.Role != nil {
		role, err := domain.ParseRole(*input.Role)
		if err != nil {
			return nil, err
		}
		patch.Role = &role
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		metrics.MutationsTotal.WithLabelValues("update", "error").Inc()
		s.logger.Error().Err(err).Str("id", id).Msg("failed to update user")
		s.notifier.Notify(ctx, "Error updating user", notifyDuration)
		return nil, fmt.Errorf("update user: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("update", "success").Inc()
	s.afterMutation(ctx, "User updated successfully")
	s.recordAudit(id, current.Name, domain.AuditUpdated, input.Actor)

	return s.repo.FindByID(ctx, id)
}

// ToggleStatus flips the record's active flag, sending the inverse of the
// current value to the store. By default the collection is reloaded; with
// OptimisticToggle the in-memory entry is patched in place instead.
func (s *UserService) ToggleStatus(ctx context.Context, id string, actor string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrMissingID
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := !current.IsActive
	if err := s.repo.Update(ctx, id, ports.UserPatch{IsActive: &next}); err != nil {
		metrics.MutationsTotal.WithLabelValues("toggle_status", "error").Inc()
		s.logger.Error().Err(err).Str("id", id).Msg("failed to update user status")
		s.notifier.Notify(ctx, "Error updating user status", notifyDuration)
		return nil, fmt.Errorf("toggle status: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("toggle_status", "success").Inc()

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.opts.OptimisticToggle && s.collection.Patch(*updated) {
		stats := s.collection.Stats()
		metrics.RecordsActive.Set(float64(stats.Active))
		metrics.RecordsInactive.Set(float64(stats.Inactive))
		s.notifier.Notify(ctx, "User status updated successfully", notifyDuration)
	} else {
		s.afterMutation(ctx, "User status updated successfully")
	}
	s.recordAudit(id, current.Name, domain.AuditStatusToggled, actor)

	return updated, nil
}

// Delete removes a record after an explicit confirmation. The gate is
// consulted before the store; a declined prompt means the store delete is
// never invoked.
func (s *UserService) Delete(ctx context.Context, id string, actor string, gate ports.ConfirmationGate) error {
	if id == "" {
		return domain.ErrMissingID
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	prompt := ports.Prompt{
		Title:       "Delete User",
		Description: fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.", current.Name),
		ConfirmText: "Delete",
		CancelText:  "Cancel",
	}
	confirmed, err := gate.Confirm(ctx, prompt)
	if err != nil {
		return fmt.Errorf("confirm delete: %w", err)
	}
	if !confirmed {
		return domain.ErrNotConfirmed
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		metrics.MutationsTotal.WithLabelValues("delete", "error").Inc()
		s.logger.Error().Err(err).Str("id", id).Msg("failed to delete user")
		s.notifier.Notify(ctx, "Error deleting user", notifyDuration)
		return fmt.Errorf("delete user: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("delete", "success").Inc()
	s.afterMutation(ctx, "User deleted successfully")
	s.recordAudit(id, current.Name, domain.AuditDeleted, actor)
	s.logger.Info().Str("id", id).Str("name", current.Name).Msg("user deleted")
	return nil
}

func (s *UserService) ensureLoaded(ctx context.Context) error {
	if s.collection.Loaded() {
		return nil
	}
	return s.Reload(ctx)
}

// afterMutation runs the reload-after-mutation policy: re-fetch replaces
// truth. A reload failure here is non-fatal; the mutation itself
// succeeded and the stale snapshot is retained until the next load.
func (s *UserService) afterMutation(ctx context.Context, message string) {
	if err := s.Reload(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("reload after mutation failed, keeping previous snapshot")
		return
	}
	s.notifier.Notify(ctx, message, notifyDuration)
}

func (s *UserService) recordAudit(id, name, action, actor string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuditEntryInput{
		RecordID:   id,
		RecordName: name,
		Action:     action,
		Actor:      actor,
		Timestamp:  time.Now().UTC(),
	})
}
