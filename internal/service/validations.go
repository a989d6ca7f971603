package service

import (
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/ashfall/questlog/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterStructValidation(habitCrossFieldValidation, HabitRequest{})
		validate.RegisterStructValidation(challengeCrossFieldValidation, ChallengeRequest{})
	})
}

// custom_days is required for custom frequency and forbidden otherwise;
// target_value is required for counter/duration recording and forbidden
// for plain checks
func habitCrossFieldValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(HabitRequest)
	if req.Frequency == entity.FrequencyCustom {
		if len(req.CustomDays) == 0 {
			sl.ReportError(req.CustomDays, "CustomDays", "CustomDays", "required_for_custom", "")
		}
	} else if len(req.CustomDays) != 0 {
		sl.ReportError(req.CustomDays, "CustomDays", "CustomDays", "excluded_unless_custom", "")
	}
	if req.RecordingType == entity.RecordingCheck {
		if req.TargetValue != nil {
			sl.ReportError(req.TargetValue, "TargetValue", "TargetValue", "excluded_for_check", "")
		}
	} else if req.TargetValue == nil {
		sl.ReportError(req.TargetValue, "TargetValue", "TargetValue", "required_for_measured", "")
	}
}

func challengeCrossFieldValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(ChallengeRequest)
	if !req.EndDate.After(req.StartDate) {
		sl.ReportError(req.EndDate, "EndDate", "EndDate", "after_start_date", "")
	}
}
