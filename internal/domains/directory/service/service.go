package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"clinic/config"
	"clinic/infras/otel"
	"clinic/internal/domains/directory/model/dto"
	"clinic/internal/domains/directory/repository"
	"clinic/shared"
	"clinic/shared/actor"
	"clinic/shared/cache"
	"clinic/shared/constant"
	"clinic/shared/failure"
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheSpecialties   = "directory:specialties"
	cachePsychologists = "directory:psychologists"
)

// Directory resolves reference data and session identities.
type Directory interface {
	ListSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error)
	PsychologistsBySpecialty(ctx context.Context, specialtyID int64) ([]dto.PsychologistResponse, error)
	ResolvePatientID(ctx context.Context, accountID string) (int64, error)
	ResolvePsychologistID(ctx context.Context, accountID string) (int64, error)
	ResolveActor(ctx context.Context, accountID, role string) (actor.Actor, error)
}

type serviceImpl struct {
	repo  repository.Directory
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Directory, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Directory {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) ListSpecialties(ctx context.Context) (res []dto.SpecialtyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".directory.ListSpecialties")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, cacheSpecialties, &res); err == nil {
		log.Debug().Str("cacheKey", cacheSpecialties).Msg("cache hit for specialties")

		return res, nil
	}

	specialties, err := s.repo.ListSpecialties(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list specialties")

		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}

	res = dto.SpecialtiesFromModels(specialties)
	s.save(ctx, cacheSpecialties, res)

	return res, nil
}

func (s *serviceImpl) PsychologistsBySpecialty(ctx context.Context, specialtyID int64) (res []dto.PsychologistResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".directory.PsychologistsBySpecialty")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if specialtyID <= 0 {
		return nil, failure.BadRequestFromString("specialtyId must be a positive integer") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cachePsychologists, specialtyID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for psychologists")

		return res, nil
	}

	specialty, err := s.repo.GetSpecialty(ctx, specialtyID)
	if err != nil {
		log.Error().Err(err).Int64("specialtyId", specialtyID).Msg("failed to get specialty")

		return nil, fmt.Errorf("failed to get specialty: %w", err)
	}

	if specialty.ID == 0 {
		return nil, failure.NotFound("specialty not found") // nolint:wrapcheck
	}

	psychologists, err := s.repo.ListPsychologistsBySpecialty(ctx, specialtyID)
	if err != nil {
		log.Error().Err(err).Int64("specialtyId", specialtyID).Msg("failed to list psychologists")

		return nil, fmt.Errorf("failed to list psychologists: %w", err)
	}

	res = dto.PsychologistsFromModels(psychologists)
	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) ResolvePatientID(ctx context.Context, accountID string) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".directory.ResolvePatientID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.TrimSpace(accountID) == constant.Empty {
		return 0, failure.NoProfileLinked
	}

	patient, err := s.repo.GetPatientByAccount(ctx, accountID)
	if err != nil {
		log.Error().Err(err).Str("accountId", accountID).Msg("failed to resolve patient")

		return 0, fmt.Errorf("failed to resolve patient: %w", err)
	}

	if patient.ID == 0 {
		return 0, failure.NoProfileLinked
	}

	return patient.ID, nil
}

func (s *serviceImpl) ResolvePsychologistID(ctx context.Context, accountID string) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".directory.ResolvePsychologistID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.TrimSpace(accountID) == constant.Empty {
		return 0, failure.NoProfileLinked
	}

	psychologist, err := s.repo.GetPsychologistByAccount(ctx, accountID)
	if err != nil {
		log.Error().Err(err).Str("accountId", accountID).Msg("failed to resolve psychologist")

		return 0, fmt.Errorf("failed to resolve psychologist: %w", err)
	}

	if psychologist.ID == 0 {
		return 0, failure.NoProfileLinked
	}

	return psychologist.ID, nil
}

// ResolveActor turns a session identity into an Actor carrying the domain id for its role.
func (s *serviceImpl) ResolveActor(ctx context.Context, accountID, role string) (actor.Actor, error) {
	parsed, err := actor.ParseRole(role)
	if err != nil {
		return actor.Actor{}, failure.Unauthorized("unknown role in session") // nolint:wrapcheck
	}

	res := actor.Actor{AccountID: accountID, Role: parsed}

	switch parsed {
	case actor.RolePatient:
		res.ID, err = s.ResolvePatientID(ctx, accountID)
	case actor.RolePsychologist:
		res.ID, err = s.ResolvePsychologistID(ctx, accountID)
	}

	if err != nil {
		return actor.Actor{}, err
	}

	return res, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save directory cache")
	}
}
