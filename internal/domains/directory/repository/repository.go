package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"clinic/infras/otel"
	"clinic/infras/postgres"
	"clinic/internal/domains/directory/model"
	"clinic/shared"
	gDto "clinic/shared/dto"
	gRepo "clinic/shared/repository"
	"context"
)

// Directory reads the reference data owned by the account subsystem.
type Directory interface {
	GetSpecialty(ctx context.Context, id int64) (model.Specialty, error)
	ListSpecialties(ctx context.Context) ([]model.Specialty, error)
	ListPsychologistsBySpecialty(ctx context.Context, specialtyID int64) ([]model.PsychologistSummary, error)
	GetPsychologist(ctx context.Context, id int64) (model.Psychologist, error)
	GetPsychologistByAccount(ctx context.Context, accountID string) (model.Psychologist, error)
	GetPatient(ctx context.Context, id int64) (model.Patient, error)
	GetPatientByAccount(ctx context.Context, accountID string) (model.Patient, error)
}

type repositoryImpl struct {
	specialties   gRepo.Repository[model.Specialty]
	psychologists gRepo.Repository[model.Psychologist]
	summaries     gRepo.Repository[model.PsychologistSummary]
	patients      gRepo.Repository[model.Patient]
}

func New(db *postgres.Connection, otel otel.Otel) Directory {
	return &repositoryImpl{
		specialties:   gRepo.NewRepository[model.Specialty](model.EntitySpecialty, model.SpecialtyTableName, db, otel),
		psychologists: gRepo.NewRepository[model.Psychologist](model.EntityPsychologist, model.PsychologistTableName, db, otel),
		summaries:     gRepo.NewRepository[model.PsychologistSummary](model.EntityPsychologist, model.PsychologistTableName, db, otel),
		patients:      gRepo.NewRepository[model.Patient](model.EntityPatient, model.PatientTableName, db, otel),
	}
}

func (r *repositoryImpl) GetSpecialty(ctx context.Context, id int64) (model.Specialty, error) {
	return r.specialties.Get(ctx, shared.FilterByID(id, model.FieldID, model.SpecialtyTableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) ListSpecialties(ctx context.Context) ([]model.Specialty, error) {
	params := gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc}

	return r.specialties.GetAll(ctx, params, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (r *repositoryImpl) ListPsychologistsBySpecialty(ctx context.Context, specialtyID int64) ([]model.PsychologistSummary, error) {
	filter := shared.FilterByID(specialtyID, model.FieldSpecialtyID, model.PsychologistTableName)
	params := gDto.QueryParams{SortBy: model.FieldFullName, SortDir: gDto.SortDirAsc}

	return r.summaries.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetPsychologist(ctx context.Context, id int64) (model.Psychologist, error) {
	return r.psychologists.Get(ctx, shared.FilterByID(id, model.FieldID, model.PsychologistTableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetPsychologistByAccount(ctx context.Context, accountID string) (model.Psychologist, error) {
	return r.psychologists.Get(ctx, shared.FilterByID(accountID, model.FieldAccountID, model.PsychologistTableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetPatient(ctx context.Context, id int64) (model.Patient, error) {
	return r.patients.Get(ctx, shared.FilterByID(id, model.FieldID, model.PatientTableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetPatientByAccount(ctx context.Context, accountID string) (model.Patient, error) {
	return r.patients.Get(ctx, shared.FilterByID(accountID, model.FieldAccountID, model.PatientTableName)) //nolint:wrapcheck
}
