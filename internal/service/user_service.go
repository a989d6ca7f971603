package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/ashfall/questlog/internal/error_values"
	"github.com/ashfall/questlog/internal/repository"
	"github.com/ashfall/questlog/pkg/entity"
)

type UserService struct {
	repo repository.ProfilesRepositoryI
}

func NewUserService(profilesRepo repository.ProfilesRepositoryI) *UserService {
	if profilesRepo == nil {
		log.Fatal("provided nil profilesRepo")
	}
	return &UserService{
		repo: profilesRepo,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.Profile, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	err = us.repo.Create(ctx, &entity.Profile{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         entity.RoleUser,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	profile, err := us.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return profile, nil
}

func (us *UserService) Login(ctx context.Context, username, password string) (*entity.Profile, error) {
	profile, err := us.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return profile, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return profile, nil
}

func (us *UserService) DeleteAccount(ctx context.Context, uid uuid.UUID, password string) error {
	profile, err := us.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return errorvalues.ErrWrongCredentials
	}
	err = us.repo.Delete(ctx, profile.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}

func (us *UserService) ChangeRole(ctx context.Context, actorID, targetID uuid.UUID, role entity.Role) error {
	if role != entity.RoleUser && role != entity.RoleAdmin {
		return errorvalues.ErrInvalidData
	}
	actor, err := us.repo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository searching error: " + err.Error())
	}
	if actor.Role != entity.RoleAdmin {
		return errorvalues.ErrNotAdmin
	}
	err = us.repo.UpdateRole(ctx, targetID, role)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository role update error: " + err.Error())
	}
	return nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
