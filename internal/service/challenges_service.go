package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/ashfall/questlog/internal/error_values"
	"github.com/ashfall/questlog/internal/repository"
	"github.com/ashfall/questlog/pkg/entity"
)

type ChallengesService struct {
	challengesRepo repository.ChallengesRepositoryI
	profilesRepo   repository.ProfilesRepositoryI
	achievements   AchievementEvaluatorI
}

func NewChallengesService(
	challengesRepo repository.ChallengesRepositoryI,
	profilesRepo repository.ProfilesRepositoryI,
	achievements AchievementEvaluatorI,
) *ChallengesService {
	if challengesRepo == nil || profilesRepo == nil || achievements == nil {
		log.Fatal("on challenges service provided nil dependencies")
	}
	return &ChallengesService{
		challengesRepo: challengesRepo,
		profilesRepo:   profilesRepo,
		achievements:   achievements,
	}
}

func (chs *ChallengesService) CreateChallenge(ctx context.Context, uid uuid.UUID, req *ChallengeRequest) (*entity.Challenge, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	id, err := chs.challengesRepo.Create(ctx, &entity.Challenge{
		CreatorID:   uid,
		Name:        req.Name,
		Description: req.Description,
		HabitName:   req.HabitName,
		StartDate:   DateOnly(req.StartDate),
		EndDate:     DateOnly(req.EndDate),
		TargetDays:  req.TargetDays,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	// The creator participates in their own challenge
	if err = chs.challengesRepo.AddParticipant(ctx, id, uid); err != nil && !errors.Is(err, errorvalues.ErrAlreadyJoined) {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	if _, err = chs.achievements.Evaluate(ctx, uid); err != nil {
		return nil, err
	}
	challenge, err := chs.challengesRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenge, nil
}

func (chs *ChallengesService) GetChallenge(ctx context.Context, id uuid.UUID) (*entity.ChallengeWithDetails, error) {
	challenge, err := chs.challengesRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	details, err := chs.assembleDetails(ctx, []*entity.Challenge{challenge})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (chs *ChallengesService) ListPublic(ctx context.Context, pagination PaginationOpts) ([]entity.ChallengeWithDetails, error) {
	challenges, err := chs.challengesRepo.ListPublic(ctx, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return chs.assembleDetails(ctx, challenges)
}

func (chs *ChallengesService) ListJoined(ctx context.Context, uid uuid.UUID) ([]entity.ChallengeWithDetails, error) {
	challenges, err := chs.challengesRepo.ListJoinedByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return chs.assembleDetails(ctx, challenges)
}

func (chs *ChallengesService) Join(ctx context.Context, challengeID, uid uuid.UUID) error {
	err := chs.challengesRepo.AddParticipant(ctx, challengeID, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlreadyJoined) || errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return err
		}
		return errors.New("challenges repository error: " + err.Error())
	}
	if _, err = chs.achievements.Evaluate(ctx, uid); err != nil {
		return err
	}
	return nil
}

func (chs *ChallengesService) Leave(ctx context.Context, challengeID, uid uuid.UUID) error {
	err := chs.challengesRepo.RemoveParticipant(ctx, challengeID, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotJoined) {
			return err
		}
		return errors.New("challenges repository error: " + err.Error())
	}
	return nil
}

func (chs *ChallengesService) GetParticipants(ctx context.Context, challengeID uuid.UUID) ([]entity.ChallengeParticipant, error) {
	if _, err := chs.challengesRepo.GetByID(ctx, challengeID); err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	participants, err := chs.challengesRepo.ListParticipants(ctx, challengeID)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return participants, nil
}

// assembleDetails joins participant counts and creator usernames onto
// challenges with two batch queries instead of one pair per row.
func (chs *ChallengesService) assembleDetails(ctx context.Context, challenges []*entity.Challenge) ([]entity.ChallengeWithDetails, error) {
	ids := make([]uuid.UUID, 0, len(challenges))
	creatorIDs := make([]uuid.UUID, 0, len(challenges))
	for _, ch := range challenges {
		ids = append(ids, ch.ID)
		creatorIDs = append(creatorIDs, ch.CreatorID)
	}
	counts, err := chs.challengesRepo.CountParticipants(ctx, ids)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	usernames, err := chs.profilesRepo.ListUsernames(ctx, creatorIDs)
	if err != nil {
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	details := make([]entity.ChallengeWithDetails, 0, len(challenges))
	for _, ch := range challenges {
		details = append(details, entity.ChallengeWithDetails{
			Challenge:        *ch,
			ParticipantCount: counts[ch.ID],
			CreatorUsername:  usernames[ch.CreatorID],
		})
	}
	return details, nil
}
