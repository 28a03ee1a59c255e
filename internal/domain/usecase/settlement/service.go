package settlement

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/authz"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/ledger"
)

// Service finalizes events: it charges the roster and closes the event in one transaction
type Service struct {
	uow          persistence.UnitOfWork
	ledger       *ledger.Ledger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new settlement Service
func NewService(
	uow persistence.UnitOfWork,
	ledger *ledger.Ledger,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.SettlementUseCase {
	return &Service{
		uow:          uow,
		ledger:       ledger,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// chargeOutcome is how one registration was paid
type chargeOutcome int

const (
	paidDirect chargeOutcome = iota
	paidByFamily
	paidByFamilyFallback
)

// FinalizeEvent charges the first max_players registered rows by insertion
// order and closes the event. Any failed posting rolls the whole call back.
func (s *Service) FinalizeEvent(ctx context.Context, actor entity.Actor, eventID uint64) (*usecase.SettlementResult, error) {
	if err := authz.RequireAdmin(actor); err != nil {
		return nil, err
	}

	result := &usecase.SettlementResult{EventID: eventID}
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		events := s.uow.GetEventRepository(ctx)
		event, err := events.GetForUpdate(ctx, eventID)
		if err != nil {
			return err
		}
		switch event.Status {
		case entity.EventClosed:
			return errs.ErrAlreadyClosed
		case entity.EventCanceled:
			return errs.ErrEventCanceled
		}

		if event.PricePerPerson > 0 {
			charges, err := s.uow.GetRegistrationRepository(ctx).ListChargeable(ctx, eventID, event.MaxPlayers)
			if err != nil {
				return err
			}
			for _, reg := range charges {
				outcome, err := s.charge(ctx, event, reg, actor)
				if err != nil {
					return fmt.Errorf("charging registration %d: %w", reg.ID, err)
				}
				switch outcome {
				case paidByFamily:
					result.FamilyPayments++
				case paidByFamilyFallback:
					result.Fallbacks++
				}
			}
			result.ChargedCount = len(charges)
			result.TotalAmount = int64(len(charges)) * event.PricePerPerson
		}

		return events.UpdateStatus(ctx, eventID, entity.EventClosed)
	})
	if err != nil {
		fields := errs.LogFields(err)
		fields["event_id"] = eventID
		fields["actor_id"] = actor.ID
		s.logger.Warn("Event finalization failed", fields)
		return nil, err
	}

	s.logger.Info("Event finalized", map[string]any{
		"event_id":        eventID,
		"charged_count":   result.ChargedCount,
		"total_amount":    entity.FormatCents(result.TotalAmount),
		"family_payments": result.FamilyPayments,
		"fallbacks":       result.Fallbacks,
		"actor_id":        actor.ID,
	})
	return result, nil
}

// charge resolves the payer for one registration and posts the ledger entries
func (s *Service) charge(ctx context.Context, event *entity.Event, reg *entity.Registration, actor entity.Actor) (chargeOutcome, error) {
	price := event.PricePerPerson
	participantID := reg.UserID
	payerID := reg.Payer()
	ref := fmt.Sprintf("event:%d", event.ID)
	description := fmt.Sprintf("Event #%d %s", event.ID, event.Title)

	if payerID != participantID {
		accepted, err := s.uow.GetFamilyPermissionRepository(ctx).IsAccepted(ctx, payerID, participantID)
		if err != nil {
			return 0, err
		}
		if !accepted {
			payerID = participantID
		}
	}

	if payerID == participantID {
		_, _, err := s.ledger.AdjustBalance(ctx, ledger.Posting{
			UserID:      participantID,
			Delta:       -price,
			Type:        entity.TxPayment,
			Description: description,
			ReferenceID: ref,
			ActorID:     &actor.ID,
		})
		return paidDirect, err
	}

	users := s.uow.GetUserRepository(ctx)
	payer, err := users.GetForUpdate(ctx, payerID)
	if err != nil {
		return 0, err
	}
	participant, err := users.GetByID(ctx, participantID)
	if err != nil {
		return 0, err
	}

	if !payer.PayForFamilyMembers || !payer.CanCover(price) {
		_, _, err := s.ledger.Post(ctx, payer, ledger.Posting{
			UserID:      payerID,
			Delta:       -price,
			Type:        entity.TxPayment,
			Description: fmt.Sprintf("%s for %s", description, participant.Name),
			ReferenceID: ref,
			ActorID:     &actor.ID,
		})
		return paidByFamilyFallback, err
	}

	// Transfer then pay, so the participant's own history shows the event payment
	postings := []ledger.Posting{
		{UserID: payerID, Delta: -price, Type: entity.TxFamilyTransfer,
			Description: fmt.Sprintf("Family transfer to %s for event #%d", participant.Name, event.ID)},
		{UserID: participantID, Delta: price, Type: entity.TxFamilyTransfer,
			Description: fmt.Sprintf("Family transfer from %s for event #%d", payer.Name, event.ID)},
		{UserID: participantID, Delta: -price, Type: entity.TxPayment,
			Description: description},
	}
	for _, p := range postings {
		p.ReferenceID = ref
		p.ActorID = &actor.ID
		if _, _, err := s.ledger.AdjustBalance(ctx, p); err != nil {
			return 0, err
		}
	}
	return paidByFamily, nil
}
