package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/app/repositories"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
)

// CollaborationService manages connection requests between profiles
type CollaborationService interface {
	SendRequest(ctx context.Context, userID uuid.UUID, req *dto.CreateCollaborationRequest) (*models.Collaboration, error)
	Respond(ctx context.Context, userID, collaborationID uuid.UUID, status models.CollaborationStatus) (*models.Collaboration, error)
	GetCollaboration(ctx context.Context, userID, collaborationID uuid.UUID) (*models.Collaboration, error)
	ListConnections(ctx context.Context, userID uuid.UUID) ([]dto.ConnectionResponse, error)
	ListIncoming(ctx context.Context, userID uuid.UUID) ([]*models.Collaboration, error)
	ListOutgoing(ctx context.Context, userID uuid.UUID) ([]*models.Collaboration, error)
	ConnectionStatus(ctx context.Context, userID, otherProfileID uuid.UUID) (*dto.ConnectionStatusResponse, error)
}

// collaborationServiceImpl implements the CollaborationService interface
type collaborationServiceImpl struct {
	collabRepo  CollaborationStore
	profileRepo ProfileStore
	notifier    Notifier
	logger      zerolog.Logger
}

// NewCollaborationService creates a new collaboration service instance
func NewCollaborationService(collabRepo CollaborationStore, profileRepo ProfileStore, notifier Notifier, logger zerolog.Logger) CollaborationService {
	return &collaborationServiceImpl{
		collabRepo:  collabRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// SendRequest creates a pending request from the caller's profile. A request is
// refused while a pending or accepted row links the two profiles in either direction.
func (s *collaborationServiceImpl) SendRequest(ctx context.Context, userID uuid.UUID, req *dto.CreateCollaborationRequest) (*models.Collaboration, error) {
	requester, err := requireProfile(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}
	if req.RecipientID == requester.ID {
		return nil, apperrors.ErrSelfCollaboration
	}

	recipient, err := s.profileRepo.GetByID(ctx, req.RecipientID)
	if err != nil {
		return nil, err
	}

	existing, err := s.collabRepo.ListBetween(ctx, requester.ID, recipient.ID)
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if c.Status == models.CollaborationPending || c.Status == models.CollaborationAccepted {
			return nil, apperrors.ErrDuplicateRequest
		}
	}

	collab := &models.Collaboration{
		RequesterID: requester.ID,
		RecipientID: recipient.ID,
		Message:     helpers.TrimmedOrNil(req.Message),
		Requester:   requester.Summary(),
		Recipient:   recipient.Summary(),
	}
	if err := s.collabRepo.Create(ctx, collab); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("collaborationID", collab.ID.String()).
		Str("requesterID", requester.ID.String()).
		Str("recipientID", recipient.ID.String()).
		Msg("Collaboration requested")

	if s.notifier != nil {
		s.notifier.CollaborationRequested(ctx, collab, requester, recipient)
	}
	return collab, nil
}

// Respond accepts or declines a pending request. Only the recipient may respond
// and a resolved request never changes again.
func (s *collaborationServiceImpl) Respond(ctx context.Context, userID, collaborationID uuid.UUID, status models.CollaborationStatus) (*models.Collaboration, error) {
	if status != models.CollaborationAccepted && status != models.CollaborationDeclined {
		return nil, fmt.Errorf("%w: status must be accepted or declined", apperrors.ErrValidationFailed)
	}

	caller, err := requireProfile(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	collab, err := s.collabRepo.GetByID(ctx, collaborationID)
	if err != nil {
		return nil, err
	}
	if collab.RecipientID != caller.ID {
		return nil, apperrors.NewForbiddenError("only the recipient can respond to this request")
	}
	if !models.CanTransition(collab.Status, status) {
		return nil, apperrors.ErrAlreadyResolved
	}

	if err := s.collabRepo.Resolve(ctx, collaborationID, status); err != nil {
		return nil, err
	}

	updated, err := s.collabRepo.GetByID(ctx, collaborationID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("collaborationID", collaborationID.String()).
		Str("status", string(status)).
		Msg("Collaboration resolved")

	if s.notifier != nil {
		requester, err := s.profileRepo.GetByID(ctx, updated.RequesterID)
		if err != nil {
			s.logger.Warn().Err(err).Str("collaborationID", collaborationID.String()).Msg("Could not load requester for notification")
		} else {
			s.notifier.CollaborationResolved(ctx, updated, requester, caller)
		}
	}
	return updated, nil
}

// GetCollaboration returns a request visible to either party
func (s *collaborationServiceImpl) GetCollaboration(ctx context.Context, userID, collaborationID uuid.UUID) (*models.Collaboration, error) {
	caller, err := requireProfile(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}
	collab, err := s.collabRepo.GetByID(ctx, collaborationID)
	if err != nil {
		return nil, err
	}
	if !collab.Involves(caller.ID) {
		return nil, apperrors.ErrCollaborationNotFound
	}
	return collab, nil
}

// ListConnections resolves every accepted row to the other party
func (s *collaborationServiceImpl) ListConnections(ctx context.Context, userID uuid.UUID) ([]dto.ConnectionResponse, error) {
	caller, err := requireProfile(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.collabRepo.ListForProfile(ctx, caller.ID, models.CollaborationAccepted, repositories.DirectionEither)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ConnectionResponse, 0, len(rows))
	for _, c := range rows {
		otherID, other := c.Counterpart(caller.ID)
		since := c.CreatedAt
		if c.RespondedAt != nil {
			since = *c.RespondedAt
		}
		out = append(out, dto.ConnectionResponse{
			CollaborationID: c.ID,
			ProfileID:       otherID,
			Profile:         other,
			Since:           since,
		})
	}
	return out, nil
}

func (s *collaborationServiceImpl) ListIncoming(ctx context.Context, userID uuid.UUID) ([]*models.Collaboration, error) {
	return s.listPending(ctx, userID, repositories.DirectionIncoming)
}

func (s *collaborationServiceImpl) ListOutgoing(ctx context.Context, userID uuid.UUID) ([]*models.Collaboration, error) {
	return s.listPending(ctx, userID, repositories.DirectionOutgoing)
}

func (s *collaborationServiceImpl) listPending(ctx context.Context, userID uuid.UUID, direction repositories.CollaborationDirection) ([]*models.Collaboration, error) {
	caller, err := requireProfile(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}
	rows, err := s.collabRepo.ListForProfile(ctx, caller.ID, models.CollaborationPending, direction)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*models.Collaboration{}
	}
	return rows, nil
}

// ConnectionStatus reports the caller's relationship to otherProfileID
func (s *collaborationServiceImpl) ConnectionStatus(ctx context.Context, userID, otherProfileID uuid.UUID) (*dto.ConnectionStatusResponse, error) {
	caller, err := requireProfile(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ConnectionStatusResponse{ProfileID: otherProfileID, State: models.ConnectionNone}
	if otherProfileID == caller.ID {
		return resp, nil
	}

	rows, err := s.collabRepo.ListBetween(ctx, caller.ID, otherProfileID)
	if err != nil {
		return nil, err
	}
	resp.State = models.ConnectionStateFor(caller.ID, rows)
	return resp, nil
}
