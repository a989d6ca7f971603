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

// RemindersService manages per-habit reminder times. Delivery is
// handled by clients, the server only stores the schedule.
type RemindersService struct {
	habitsRepo    repository.HabitsRepositoryI
	remindersRepo repository.RemindersRepositoryI
}

func NewRemindersService(habitsRepo repository.HabitsRepositoryI, remindersRepo repository.RemindersRepositoryI) *RemindersService {
	if habitsRepo == nil || remindersRepo == nil {
		log.Fatal("on reminders service provided nil repos")
	}
	return &RemindersService{
		habitsRepo:    habitsRepo,
		remindersRepo: remindersRepo,
	}
}

func (rs *RemindersService) CreateReminder(ctx context.Context, habitID, userID uuid.UUID, req *ReminderRequest) (*entity.Reminder, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	if err := rs.checkHabitOwner(ctx, habitID, userID); err != nil {
		return nil, err
	}
	reminder := &entity.Reminder{
		HabitID:      habitID,
		UserID:       userID,
		ReminderTime: req.ReminderTime,
		Enabled:      req.Enabled,
	}
	id, err := rs.remindersRepo.Create(ctx, reminder)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	reminder.ID = id
	return reminder, nil
}

func (rs *RemindersService) GetHabitReminders(ctx context.Context, habitID, userID uuid.UUID) ([]entity.Reminder, error) {
	if err := rs.checkHabitOwner(ctx, habitID, userID); err != nil {
		return nil, err
	}
	reminders, err := rs.remindersRepo.ListByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	return reminders, nil
}

func (rs *RemindersService) UpdateReminder(ctx context.Context, reminderID int, userID uuid.UUID, req *ReminderRequest) error {
	if err := validateStruct(*req); err != nil {
		return err
	}
	reminder, err := rs.getOwnedReminder(ctx, reminderID, userID)
	if err != nil {
		return err
	}
	reminder.ReminderTime = req.ReminderTime
	reminder.Enabled = req.Enabled
	if err = rs.remindersRepo.Update(ctx, reminder); err != nil {
		if errors.Is(err, errorvalues.ErrReminderNotFound) {
			return err
		}
		return errors.New("reminders repository error: " + err.Error())
	}
	return nil
}

func (rs *RemindersService) DeleteReminder(ctx context.Context, reminderID int, userID uuid.UUID) error {
	if _, err := rs.getOwnedReminder(ctx, reminderID, userID); err != nil {
		return err
	}
	err := rs.remindersRepo.Delete(ctx, reminderID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrReminderNotFound) {
			return err
		}
		return errors.New("reminders repository error: " + err.Error())
	}
	return nil
}

func (rs *RemindersService) checkHabitOwner(ctx context.Context, habitID, userID uuid.UUID) error {
	habit, err := rs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	return nil
}

func (rs *RemindersService) getOwnedReminder(ctx context.Context, reminderID int, userID uuid.UUID) (*entity.Reminder, error) {
	reminder, err := rs.remindersRepo.GetByID(ctx, reminderID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrReminderNotFound) {
			return nil, err
		}
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	if reminder.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return reminder, nil
}
