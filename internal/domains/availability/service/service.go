package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"clinic/config"
	"clinic/infras/otel"
	"clinic/internal/domains/appointment/model"
	"clinic/internal/domains/appointment/repository"
	"clinic/shared"
	"clinic/shared/cache"
	"clinic/shared/constant"
	"clinic/shared/failure"
	"clinic/shared/timezone"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const cacheAvailability = "availability"

// Availability answers which grid slots of a psychologist's day are taken.
type Availability interface {
	OccupiedSlots(ctx context.Context, psychologistID int64, date string) ([]string, error)
	FreeSlots(ctx context.Context, psychologistID int64, date string) ([]string, error)
	Invalidate(ctx context.Context, psychologistID int64, days ...time.Time)
}

type serviceImpl struct {
	repo  repository.Appointment
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	grid  Grid
}

func New(repo repository.Appointment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	grid, err := NewGrid(cfg.Booking.FirstSlot, cfg.Booking.LastSlot, cfg.Booking.SlotMinutes)
	if err != nil {
		log.Error().Err(err).Msg("invalid slot grid configuration, using the default grid")

		grid, _ = NewGrid("", "", 0)
	}

	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		grid:  grid,
	}
}

// OccupiedSlots returns, in grid order, every slot whose interval intersects a non-cancelled
// appointment of the psychologist on that date.
func (s *serviceImpl) OccupiedSlots(ctx context.Context, psychologistID int64, date string) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.OccupiedSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, err := parseRequest(psychologistID, date)
	if err != nil {
		return nil, err
	}

	key := cacheKey(psychologistID, day)

	if err = s.cache.Get(ctx, key, &res); err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit for availability")

		return res, nil
	}

	ttl := s.cfg.Booking.AvailabilityTTLSeconds

	// Read before the load. An invalidation during the load turns the save below into a no-op.
	var generation int64

	cacheable := ttl > 0
	if cacheable {
		if generation, err = s.cache.Generation(ctx, key); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to read availability cache generation")

			cacheable = false
		}
	}

	appointments, err := s.repo.ListBlocking(ctx, psychologistID, day, day.AddDate(0, 0, 1))
	if err != nil {
		log.Error().Err(err).Int64("psychologistId", psychologistID).Str("date", date).Msg("failed to load appointments")

		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	res = []string{}

	for _, slot := range s.grid.Slots(day) {
		if occupied(appointments, slot, slot.Add(s.grid.Length())) {
			res = append(res, slot.Format(constant.ClockLayout))
		}
	}

	if cacheable {
		if _, err := s.cache.SaveIfGeneration(ctx, key, generation, res, ttl); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save availability to cache")
		}
	}

	return res, nil
}

// FreeSlots is the grid of the date minus its occupied slots.
func (s *serviceImpl) FreeSlots(ctx context.Context, psychologistID int64, date string) ([]string, error) {
	occupiedSlots, err := s.OccupiedSlots(ctx, psychologistID, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(occupiedSlots))
	for _, slot := range occupiedSlots {
		taken[slot] = struct{}{}
	}

	day, _ := timezone.Parse(constant.DateLayout, date)
	res := []string{}

	for _, slot := range s.grid.Slots(day) {
		label := slot.Format(constant.ClockLayout)
		if _, ok := taken[label]; !ok {
			res = append(res, label)
		}
	}

	return res, nil
}

// Invalidate drops the cached availability of the psychologist for the calendar days of days and
// bumps their generation, so a load already in flight cannot store what it read.
func (s *serviceImpl) Invalidate(ctx context.Context, psychologistID int64, days ...time.Time) {
	keys := make([]string, 0, len(days))
	for _, day := range days {
		keys = append(keys, cacheKey(psychologistID, timezone.StartOfDay(day)))
	}

	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		log.Error().Err(err).Strs("keys", keys).Msg("failed to invalidate availability cache")
	}
}

func parseRequest(psychologistID int64, date string) (time.Time, error) {
	if psychologistID <= 0 {
		return time.Time{}, failure.BadRequestFromString("psychologistId must be a positive integer") //nolint:wrapcheck
	}

	day, err := timezone.Parse(constant.DateLayout, date)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("date must be a valid date formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	return day, nil
}

func occupied(appointments []model.Appointment, start, end time.Time) bool {
	for _, appt := range appointments {
		if appt.Blocks() && appt.Overlaps(start, end) {
			return true
		}
	}

	return false
}

func cacheKey(psychologistID int64, day time.Time) string {
	return shared.BuildCacheKey(cacheAvailability, psychologistID, day.Format(constant.DateLayout))
}
