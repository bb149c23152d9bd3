package main

import (
	"github.com/protomem/time-clock/internal/clock"
	"github.com/protomem/time-clock/internal/model"
	"github.com/protomem/time-clock/internal/validator"
)

// Validation rules

const _maxUserIDLength = 64

func validateRequestOpenModal(v *validator.Validator, request requestOpenModal) {
	validateUserID(v, request.UserID)
}

func validateUserID(v *validator.Validator, userID model.UserID) {
	v.CheckField(validator.NotBlank(userID), "userId", "cannot be blank")
	v.CheckField(validator.MaxRunes(userID, _maxUserIDLength), "userId", "is too long")
}

func validateDateKey(v *validator.Validator, date model.DateKey) {
	v.CheckField(clock.ValidDateKey(date), "date", "must be YYYY-MM-DD")
}
