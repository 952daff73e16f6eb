package dto

import "clinic/internal/domains/directory/model"

type SpecialtyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (r *SpecialtyResponse) FromModel(m model.Specialty) {
	r.ID = m.ID
	r.Name = m.Name
}

type PsychologistResponse struct {
	ID            int64  `json:"id"`
	FullName      string `json:"fullName"`
	SpecialtyID   int64  `json:"specialtyId"`
	SpecialtyName string `json:"specialtyName"`
}

func (r *PsychologistResponse) FromModel(m model.PsychologistSummary) {
	r.ID = m.ID
	r.FullName = m.FullName
	r.SpecialtyID = m.SpecialtyID
	r.SpecialtyName = m.SpecialtyName
}

func SpecialtiesFromModels(models []model.Specialty) []SpecialtyResponse {
	res := make([]SpecialtyResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

func PsychologistsFromModels(models []model.PsychologistSummary) []PsychologistResponse {
	res := make([]PsychologistResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
