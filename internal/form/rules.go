package form

import (
	"math"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/baharkarakas/player-registry/internal/models"
	"github.com/baharkarakas/player-registry/internal/validate"
)

const (
	MsgNameRequired     = "Name is required"
	MsgDOBRequired      = "Date of Birth is required"
	MsgDOBInvalid       = "Date of Birth must be a valid date"
	MsgDOBTooRecent     = "Date of Birth must be at least 5 years ago"
	MsgLeaguesRequired  = "Please select at least one league"
	MsgLeagueUnknown    = "Unknown league"
	MsgHeightRequired   = "Height is required"
	MsgHeightNotNumber  = "Height must be a number"
	MsgHeightTooLow     = "Height cannot be less than 1 meter"
	MsgHeightTooHigh    = "Height cannot be more than 3 meter"
	MsgStatusRequired   = "Status is required"
	MsgStatusUnknown    = "Unknown status"
	MsgPositionRequired = "Position is required"
	MsgPositionUnknown  = "Unknown position"
)

const (
	MinHeight = 1.0
	MaxHeight = 3.0

	// MinAgeYears is how far before "now" a date of birth has to be.
	MinAgeYears = 5
)

// MinValidDOB is the latest acceptable date of birth at instant now.
// The cutoff moves with the clock; nothing pins it.
func MinValidDOB(now time.Time) time.Time {
	return now.AddDate(-MinAgeYears, 0, 0)
}

// Validate checks every field independently against the form rules as of
// now. It returns nil when the values can be submitted.
func Validate(v Values, now time.Time) validate.Errs {
	cutoff := MinValidDOB(now)
	err := validation.ValidateStruct(&v,
		validation.Field(&v.Name, validation.By(notBlank(MsgNameRequired))),
		validation.Field(&v.DOB, validation.By(notBlank(MsgDOBRequired)), validation.By(bornBy(cutoff))),
		validation.Field(&v.LeaguesPlayed, validation.Required.Error(MsgLeaguesRequired), validation.By(knownLeagues)),
		validation.Field(&v.Height, validation.By(notBlank(MsgHeightRequired)), validation.By(heightInRange)),
		validation.Field(&v.Status,
			validation.Required.Error(MsgStatusRequired),
			validation.In(enumValues(models.Statuses)...).Error(MsgStatusUnknown)),
		validation.Field(&v.Position,
			validation.Required.Error(MsgPositionRequired),
			validation.In(enumValues(models.Positions)...).Error(MsgPositionUnknown)),
	)
	errs, ierr := validate.FromRules(err, fieldOrder...)
	if ierr != nil {
		// Only reachable through a broken rule; surface it on the form.
		return validate.Errs{{Field: "", Msg: ierr.Error()}}
	}
	return errs
}

func enumValues[T ~string](members []T) []interface{} {
	out := make([]interface{}, len(members))
	for i, m := range members {
		out[i] = string(m)
	}
	return out
}

func notBlank(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError("validation_required", msg)
		}
		return nil
	}
}

func bornBy(cutoff time.Time) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		dob, err := models.ParseDate(s)
		if err != nil {
			return validation.NewError("validation_date_invalid", MsgDOBInvalid)
		}
		if dob.After(cutoff) {
			return validation.NewError("validation_date_too_recent", MsgDOBTooRecent)
		}
		return nil
	}
}

func knownLeagues(value interface{}) error {
	leagues, _ := value.([]string)
	for _, l := range leagues {
		if !models.League(l).Valid() {
			return validation.NewError("validation_league_unknown", MsgLeagueUnknown)
		}
	}
	return nil
}

func heightInRange(value interface{}) error {
	s, _ := value.(string)
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	h, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) {
		return validation.NewError("validation_not_a_number", MsgHeightNotNumber)
	}
	// validation.Min treats 0 as empty, so the bounds are checked here.
	switch {
	case h < MinHeight:
		return validation.NewError("validation_min_less_than", MsgHeightTooLow)
	case h > MaxHeight:
		return validation.NewError("validation_max_greater_than", MsgHeightTooHigh)
	}
	return nil
}
