package main

import (
	"clinic/config"
	"clinic/infras/jwt"
	"clinic/infras/otel"
	"clinic/infras/postgres"
	"clinic/infras/redis"
	"clinic/shared/cache"
	"clinic/shared/constant"
	"clinic/shared/logger"
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	seedTimeout    = time.Minute
	directoryCache = "directory:*"
)

var specialties = []string{
	"Clinical psychology",
	"Child psychology",
	"Couples therapy",
	"Neuropsychology",
	"Health psychology",
}

type account struct {
	ID    string
	Email string
	Role  string
}

func main() {
	psychologists := flag.Int("psychologists", 10, "psychologists per specialty")
	patients := flag.Int("patients", 200, "patients to create")
	tokens := flag.Bool("tokens", false, "print development access tokens for one account of each role")
	flush := flag.Bool("flush-cache", true, "drop cached directory listings after seeding")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger(cfg)
	logger.SetLogLevel(cfg)

	gofakeit.Seed(time.Now().UnixNano()) //nolint:errcheck

	db := postgres.New(cfg)
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	var samples []account

	err := db.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		psychologist, err := seedPsychologists(ctx, tx, *psychologists)
		if err != nil {
			return err
		}

		patient, err := seedPatients(ctx, tx, *patients)
		if err != nil {
			return err
		}

		samples = []account{
			{ID: "admin-" + uuid.NewString(), Email: gofakeit.Email(), Role: constant.RoleAdmin},
			psychologist,
			patient,
		}

		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	log.Info().Int("specialties", len(specialties)).Int("patients", *patients).Msg("Seed complete")

	if *flush {
		flushDirectory(ctx, cfg)
	}

	if *tokens {
		printTokens(cfg, samples)
	}
}

func seedPsychologists(ctx context.Context, tx *sqlx.Tx, perSpecialty int) (account, error) {
	var first account

	for _, name := range specialties {
		var specialtyID int64

		err := tx.GetContext(ctx, &specialtyID, `
			INSERT INTO specialties (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET updated_at = NOW()
			RETURNING id`, name)
		if err != nil {
			return first, fmt.Errorf("failed to seed specialty %q: %w", name, err)
		}

		for range perSpecialty {
			accountID := uuid.NewString()

			_, err = tx.ExecContext(ctx, `
				INSERT INTO psychologists (account_id, specialty_id, full_name) VALUES ($1, $2, $3)`,
				accountID, specialtyID, "Dr. "+gofakeit.Name())
			if err != nil {
				return first, fmt.Errorf("failed to seed psychologist: %w", err)
			}

			if first.ID == "" {
				first = account{ID: accountID, Email: gofakeit.Email(), Role: constant.RolePsychologist}
			}
		}
	}

	return first, nil
}

func seedPatients(ctx context.Context, tx *sqlx.Tx, count int) (account, error) {
	var first account

	for range count {
		accountID := uuid.NewString()

		_, err := tx.ExecContext(ctx, `INSERT INTO patients (account_id, full_name) VALUES ($1, $2)`,
			accountID, gofakeit.Name())
		if err != nil {
			return first, fmt.Errorf("failed to seed patient: %w", err)
		}

		if first.ID == "" {
			first = account{ID: accountID, Email: gofakeit.Email(), Role: constant.RolePatient}
		}
	}

	return first, nil
}

func flushDirectory(ctx context.Context, cfg *config.Config) {
	client := redis.New(cfg)
	defer client.Close()

	if err := cache.NewRedisCache(client, otel.New(cfg)).Clear(ctx, directoryCache); err != nil {
		log.Error().Err(err).Msg("Failed to drop cached directory listings")
	}
}

func printTokens(cfg *config.Config, samples []account) {
	issuer := jwt.New(cfg)

	for _, sample := range samples {
		if sample.ID == "" {
			continue
		}

		pair, err := issuer.GenerateTokenPair(sample.ID, sample.Email, sample.Role)
		if err != nil {
			log.Error().Err(err).Str("role", sample.Role).Msg("Failed to issue development token")

			continue
		}

		fmt.Printf("%-13s %s\n%s\n\n", sample.Role, sample.ID, pair.AccessToken) //nolint:forbidigo
	}
}
