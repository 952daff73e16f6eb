package dto

import "clinic/internal/domains/appointment/model"

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Confirmed Completed Cancelled"`
}

func (s *StatusRequest) Target() (model.Status, error) {
	return model.ParseStatus(s.Status) //nolint:wrapcheck
}
