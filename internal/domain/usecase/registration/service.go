package registration

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/authz"
)

// Service runs the registration state machine and capacity reconciliation.
// Every mutating call locks the event row first.
type Service struct {
	uow          persistence.UnitOfWork
	authorizer   *authz.Authorizer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new registration Service
func NewService(
	uow persistence.UnitOfWork,
	authorizer *authz.Authorizer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.RegistrationUseCase {
	return &Service{
		uow:          uow,
		authorizer:   authorizer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register places targetUserID on the event roster, registered or waitlisted
func (s *Service) Register(ctx context.Context, actor entity.Actor, eventID, targetUserID uint64) (*usecase.RegisterResult, error) {
	if err := s.authorizer.RequireActOn(ctx, actor, targetUserID); err != nil {
		s.logRejected("Registration rejected", eventID, targetUserID, actor, err)
		return nil, err
	}

	result := &usecase.RegisterResult{}
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		event, err := s.uow.GetEventRepository(ctx).GetForUpdate(ctx, eventID)
		if err != nil {
			return err
		}
		now := s.timeProvider.Now()
		if !actor.IsSuperAdmin() {
			if err := checkEventWindow(event, now, true); err != nil {
				return err
			}
		}

		user, err := s.uow.GetUserRepository(ctx).GetForUpdate(ctx, targetUserID)
		if err != nil {
			return err
		}
		if !actor.IsSuperAdmin() {
			if err := checkBalanceFloors(user, event); err != nil {
				return err
			}
		}

		regs := s.uow.GetRegistrationRepository(ctx)
		existing, err := regs.FindByEventAndUser(ctx, eventID, targetUserID)
		if err != nil && !errors.Is(err, errs.ErrRegistrationNotFound) {
			return err
		}
		if existing != nil && existing.IsActive() {
			return errs.ErrAlreadyRegistered
		}

		status, bumped, err := s.admit(ctx, event, targetUserID)
		if err != nil {
			return err
		}
		if bumped != nil {
			result.BumpedUserID = &bumped.UserID
		}

		if existing != nil {
			existing.Reactivate(status, actor.ID, now)
			if err := regs.Update(ctx, existing); err != nil {
				return err
			}
			result.RegistrationID = existing.ID
		} else {
			actingID := actor.ID
			reg := &entity.Registration{
				EventID:      eventID,
				UserID:       targetUserID,
				Status:       status,
				RegisteredBy: &actingID,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := regs.Create(ctx, reg); err != nil {
				return err
			}
			result.RegistrationID = reg.ID
		}
		result.Status = status
		return nil
	})
	if err != nil {
		s.logRejected("Registration rejected", eventID, targetUserID, actor, err)
		return nil, err
	}

	fields := map[string]any{
		"event_id":        eventID,
		"user_id":         targetUserID,
		"actor_id":        actor.ID,
		"registration_id": result.RegistrationID,
		"status":          string(result.Status),
	}
	if result.BumpedUserID != nil {
		fields["bumped_user_id"] = *result.BumpedUserID
	}
	s.logger.Info("User registered for event", fields)
	return result, nil
}

// admit is the single-admission case: straight in when there is room; when
// full, a depositor displaces the newest registered non-depositor, and anyone
// else waits
func (s *Service) admit(ctx context.Context, event *entity.Event, userID uint64) (entity.RegistrationStatus, *entity.Registration, error) {
	regs := s.uow.GetRegistrationRepository(ctx)
	registered, err := regs.ListByStatus(ctx, event.ID, entity.RegistrationRegistered)
	if err != nil {
		return "", nil, err
	}
	if len(registered) < event.MaxPlayers {
		return entity.RegistrationRegistered, nil, nil
	}

	deposits := s.uow.GetDepositRepository(ctx)
	hasDeposit, err := deposits.HasActive(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	if !hasDeposit || len(registered) == 0 {
		return entity.RegistrationWaitlist, nil, nil
	}

	holders, err := deposits.ActiveHolders(ctx, userIDs(registered))
	if err != nil {
		return "", nil, err
	}
	bump := pickBumpTarget(registered, holders)
	if bump == nil {
		return entity.RegistrationWaitlist, nil, nil
	}
	if err := regs.SetStatus(ctx, []uint64{bump.ID}, entity.RegistrationWaitlist); err != nil {
		return "", nil, err
	}
	return entity.RegistrationRegistered, bump, nil
}

// Cancel unregisters targetUserID; freeing a registered slot promotes one waitlisted user
func (s *Service) Cancel(ctx context.Context, actor entity.Actor, eventID, targetUserID uint64) (*usecase.CancelResult, error) {
	if err := s.authorizer.RequireActOn(ctx, actor, targetUserID); err != nil {
		s.logRejected("Cancellation rejected", eventID, targetUserID, actor, err)
		return nil, err
	}

	result := &usecase.CancelResult{}
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		event, err := s.uow.GetEventRepository(ctx).GetForUpdate(ctx, eventID)
		if err != nil {
			return err
		}
		if err := checkEventWindow(event, s.timeProvider.Now(), !actor.IsAdmin()); err != nil {
			return err
		}

		regs := s.uow.GetRegistrationRepository(ctx)
		reg, err := regs.FindByEventAndUser(ctx, eventID, targetUserID)
		if err != nil {
			return err
		}
		if !reg.IsActive() {
			return errs.ErrRegistrationCanceled
		}

		prior := reg.Status
		if err := regs.SetStatus(ctx, []uint64{reg.ID}, entity.RegistrationCanceled); err != nil {
			return err
		}
		if prior != entity.RegistrationRegistered {
			return nil
		}

		promoted, err := s.promoteOne(ctx, event)
		if err != nil {
			return err
		}
		if promoted != nil {
			result.PromotedUserID = &promoted.UserID
		}
		return nil
	})
	if err != nil {
		s.logRejected("Cancellation rejected", eventID, targetUserID, actor, err)
		return nil, err
	}

	fields := map[string]any{
		"event_id": eventID,
		"user_id":  targetUserID,
		"actor_id": actor.ID,
	}
	if result.PromotedUserID != nil {
		fields["promoted_user_id"] = *result.PromotedUserID
	}
	s.logger.Info("Registration canceled", fields)
	return result, nil
}

// promoteOne fills one freed slot, preferring the oldest waitlisted depositor
func (s *Service) promoteOne(ctx context.Context, event *entity.Event) (*entity.Registration, error) {
	regs := s.uow.GetRegistrationRepository(ctx)
	count, err := regs.CountByStatus(ctx, event.ID, entity.RegistrationRegistered)
	if err != nil {
		return nil, err
	}
	if count >= int64(event.MaxPlayers) {
		return nil, nil
	}

	waitlist, err := regs.ListByStatus(ctx, event.ID, entity.RegistrationWaitlist)
	if err != nil || len(waitlist) == 0 {
		return nil, err
	}
	holders, err := s.uow.GetDepositRepository(ctx).ActiveHolders(ctx, userIDs(waitlist))
	if err != nil {
		return nil, err
	}

	next := pickPromotion(waitlist, holders)
	if err := regs.SetStatus(ctx, []uint64{next.ID}, entity.RegistrationRegistered); err != nil {
		return nil, err
	}
	return next, nil
}

// UpdateEventCapacity changes max players and reconciles the roster in bulk
func (s *Service) UpdateEventCapacity(ctx context.Context, actor entity.Actor, eventID uint64, newMaxPlayers int) (*usecase.CapacityResult, error) {
	if err := authz.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if newMaxPlayers < 0 {
		return nil, errs.ErrInvalidRequest
	}

	result := &usecase.CapacityResult{EventID: eventID, NewMaxPlayers: newMaxPlayers}
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		events := s.uow.GetEventRepository(ctx)
		event, err := events.GetForUpdate(ctx, eventID)
		if err != nil {
			return err
		}
		if err := event.StatusError(); err != nil {
			return err
		}
		result.OldMaxPlayers = event.MaxPlayers

		if err := events.UpdateMaxPlayers(ctx, eventID, newMaxPlayers); err != nil {
			return err
		}

		regs := s.uow.GetRegistrationRepository(ctx)
		registered, err := regs.ListByStatus(ctx, eventID, entity.RegistrationRegistered)
		if err != nil {
			return err
		}
		waitlist, err := regs.ListByStatus(ctx, eventID, entity.RegistrationWaitlist)
		if err != nil {
			return err
		}
		holders, err := s.uow.GetDepositRepository(ctx).ActiveHolders(ctx, userIDs(registered, waitlist))
		if err != nil {
			return err
		}

		confirmed := len(registered)
		switch {
		case confirmed < newMaxPlayers && len(waitlist) > 0:
			promote := planPromotions(waitlist, newMaxPlayers-confirmed, holders)
			if err := regs.SetStatus(ctx, ids(promote), entity.RegistrationRegistered); err != nil {
				return err
			}
			result.Promoted = len(promote)
			result.PromotedWithDeposit = countDepositors(promote, holders)
		case confirmed > newMaxPlayers:
			demote := planDemotions(registered, confirmed-newMaxPlayers, holders)
			if err := regs.SetStatus(ctx, ids(demote), entity.RegistrationWaitlist); err != nil {
				return err
			}
			result.Demoted = len(demote)
			result.DemotedWithDeposit = countDepositors(demote, holders)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Capacity update rejected", mergeFields(errs.LogFields(err), map[string]any{
			"event_id": eventID,
			"actor_id": actor.ID,
		}))
		return nil, err
	}

	s.logger.Info("Event capacity updated", map[string]any{
		"event_id":              eventID,
		"old_max_players":       result.OldMaxPlayers,
		"new_max_players":       result.NewMaxPlayers,
		"promoted":              result.Promoted,
		"promoted_with_deposit": result.PromotedWithDeposit,
		"demoted":               result.Demoted,
		"demoted_with_deposit":  result.DemotedWithDeposit,
		"actor_id":              actor.ID,
	})
	return result, nil
}

// Roster returns the registered list and the waitlist, oldest first, with display indices
func (s *Service) Roster(ctx context.Context, eventID uint64) (*usecase.Roster, error) {
	event, err := s.uow.GetEventRepository(ctx).GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	regs := s.uow.GetRegistrationRepository(ctx)
	registered, err := regs.ListByStatus(ctx, eventID, entity.RegistrationRegistered)
	if err != nil {
		return nil, err
	}
	waitlist, err := regs.ListByStatus(ctx, eventID, entity.RegistrationWaitlist)
	if err != nil {
		return nil, err
	}
	holders, err := s.uow.GetDepositRepository(ctx).ActiveHolders(ctx, userIDs(registered, waitlist))
	if err != nil {
		return nil, err
	}

	return &usecase.Roster{
		EventID:    eventID,
		MaxPlayers: event.MaxPlayers,
		Registered: rosterEntries(registered, 1, holders),
		Waitlist:   rosterEntries(waitlist, event.MaxPlayers+1, holders),
	}, nil
}

func rosterEntries(rows []*entity.Registration, firstIndex int, holders map[uint64]bool) []usecase.RosterEntry {
	entries := make([]usecase.RosterEntry, len(rows))
	for i, r := range rows {
		entries[i] = usecase.RosterEntry{
			Index:          firstIndex + i,
			RegistrationID: r.ID,
			UserID:         r.UserID,
			HasDeposit:     holders[r.UserID],
			RegisteredBy:   r.RegisteredBy,
			CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return entries
}

// checkEventWindow rejects events that are not open or already started and,
// when enforceCutoff is set, changes inside the cutoff window
func checkEventWindow(event *entity.Event, now time.Time, enforceCutoff bool) error {
	if err := event.StatusError(); err != nil {
		return err
	}
	if event.HasStarted(now) {
		return errs.ErrEventStarted
	}
	if enforceCutoff {
		return event.CheckCutoff(now)
	}
	return nil
}

// checkBalanceFloors projects the balance after paying for the event and
// checks it against the user's and the event's floor
func checkBalanceFloors(user *entity.User, event *entity.Event) error {
	projected := user.Balance() - event.PricePerPerson
	for _, floor := range []struct {
		owner string
		value int64
	}{
		{"user", user.Floor()},
		{"event", event.Floor()},
	} {
		if projected < floor.value {
			return &errs.BalanceFloorError{
				UserID:     user.ID,
				Balance:    user.GetBalance(),
				Required:   entity.FormatCents(event.PricePerPerson),
				Floor:      entity.FormatCents(floor.value),
				FloorOwner: floor.owner,
			}
		}
	}
	return nil
}

func (s *Service) logRejected(message string, eventID, userID uint64, actor entity.Actor, err error) {
	fields := mergeFields(errs.LogFields(err), map[string]any{
		"event_id": eventID,
		"user_id":  userID,
		"actor_id": actor.ID,
	})
	if errs.ErrorCode(err) >= errs.CodeInternalServer {
		s.logger.Error(message, fields)
		return
	}
	s.logger.Warn(message, fields)
}

func mergeFields(base, extra map[string]any) map[string]any {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
