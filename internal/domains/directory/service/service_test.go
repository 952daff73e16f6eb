package service_test

import (
	"clinic/config"
	otelMocks "clinic/infras/otel/mocks"
	"clinic/internal/domains/directory/mocks"
	"clinic/internal/domains/directory/model"
	"clinic/internal/domains/directory/model/dto"
	"clinic/internal/domains/directory/service"
	"clinic/shared/actor"
	cacheMocks "clinic/shared/cache/mocks"
	"clinic/shared/failure"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errCacheMiss = errors.New("cache miss")

func newService(t *testing.T) (service.Directory, *mocks.MockDirectory, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockDirectory(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	return service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel()), mockRepo, mockCache
}

func TestDirectory_PsychologistsBySpecialty(t *testing.T) {
	tests := []struct {
		name      string
		id        int64
		setupMock func(repo *mocks.MockDirectory, cache *cacheMocks.MockRedisCache)
		want      []dto.PsychologistResponse
		wantKind  failure.Kind
	}{
		{
			name:     "non positive id",
			id:       0,
			wantKind: failure.KindInvalidArgument,
		},
		{
			name: "cache hit skips the database",
			id:   2,
			setupMock: func(_ *mocks.MockDirectory, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "directory:psychologists:2", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*[]dto.PsychologistResponse) = []dto.PsychologistResponse{{ID: 5, FullName: "Dr. Ana"}}

						return nil
					})
			},
			want: []dto.PsychologistResponse{{ID: 5, FullName: "Dr. Ana"}},
		},
		{
			name: "unknown specialty",
			id:   9,
			setupMock: func(repo *mocks.MockDirectory, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				repo.EXPECT().GetSpecialty(gomock.Any(), int64(9)).Return(model.Specialty{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "loads and caches",
			id:   2,
			setupMock: func(repo *mocks.MockDirectory, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				repo.EXPECT().GetSpecialty(gomock.Any(), int64(2)).Return(model.Specialty{ID: 2, Name: "Child"}, nil)
				repo.EXPECT().ListPsychologistsBySpecialty(gomock.Any(), int64(2)).Return([]model.PsychologistSummary{
					{ID: 5, FullName: "Dr. Ana", SpecialtyID: 2, SpecialtyName: "Child"},
				}, nil)
				cache.EXPECT().Save(gomock.Any(), "directory:psychologists:2", gomock.Any(), 300).Return(nil)
			},
			want: []dto.PsychologistResponse{{ID: 5, FullName: "Dr. Ana", SpecialtyID: 2, SpecialtyName: "Child"}},
		},
		{
			name: "repository failure",
			id:   2,
			setupMock: func(repo *mocks.MockDirectory, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				repo.EXPECT().GetSpecialty(gomock.Any(), int64(2)).Return(model.Specialty{ID: 2}, nil)
				repo.EXPECT().ListPsychologistsBySpecialty(gomock.Any(), int64(2)).Return(nil, errors.New("db down"))
			},
			wantKind: failure.KindUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo, cache)
			}

			got, err := svc.PsychologistsBySpecialty(context.Background(), tt.id)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectory_ListSpecialties(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().Get(gomock.Any(), "directory:specialties", gomock.Any()).Return(errCacheMiss)
	repo.EXPECT().ListSpecialties(gomock.Any()).Return([]model.Specialty{{ID: 1, Name: "Adult"}, {ID: 2, Name: "Child"}}, nil)
	cache.EXPECT().Save(gomock.Any(), "directory:specialties", gomock.Any(), 300).Return(errors.New("redis down"))

	got, err := svc.ListSpecialties(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.SpecialtyResponse{{ID: 1, Name: "Adult"}, {ID: 2, Name: "Child"}}, got)
}

func TestDirectory_ResolvePatientID(t *testing.T) {
	t.Run("linked account", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetPatientByAccount(gomock.Any(), "acc-3").Return(model.Patient{ID: 3, AccountID: "acc-3"}, nil)

		id, err := svc.ResolvePatientID(context.Background(), "acc-3")
		require.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("no profile", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetPatientByAccount(gomock.Any(), "acc-x").Return(model.Patient{}, nil)

		_, err := svc.ResolvePatientID(context.Background(), "acc-x")
		require.Error(t, err)
		assert.Equal(t, "no profile linked to this account", err.Error())
		assert.True(t, failure.Is(err, failure.KindNotFound))
	})

	t.Run("empty account", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.ResolvePatientID(context.Background(), " ")
		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestDirectory_ResolvePsychologistID(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.EXPECT().GetPsychologistByAccount(gomock.Any(), "acc-5").Return(model.Psychologist{}, errors.New("db down"))

	_, err := svc.ResolvePsychologistID(context.Background(), "acc-5")
	require.Error(t, err)
	assert.Equal(t, failure.KindUnavailable, failure.GetKind(err))
}

func TestDirectory_ResolveActor(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		setupMock func(repo *mocks.MockDirectory)
		want      actor.Actor
		wantKind  failure.Kind
	}{
		{
			name: "patient",
			role: "patient",
			setupMock: func(repo *mocks.MockDirectory) {
				repo.EXPECT().GetPatientByAccount(gomock.Any(), "acc").Return(model.Patient{ID: 3}, nil)
			},
			want: actor.Actor{AccountID: "acc", ID: 3, Role: actor.RolePatient},
		},
		{
			name: "legacy psychologist code",
			role: "2",
			setupMock: func(repo *mocks.MockDirectory) {
				repo.EXPECT().GetPsychologistByAccount(gomock.Any(), "acc").Return(model.Psychologist{ID: 5}, nil)
			},
			want: actor.Actor{AccountID: "acc", ID: 5, Role: actor.RolePsychologist},
		},
		{
			name: "admin needs no profile",
			role: "admin",
			want: actor.Actor{AccountID: "acc", Role: actor.RoleAdmin},
		},
		{
			name: "psychologist without profile",
			role: "psychologist",
			setupMock: func(repo *mocks.MockDirectory) {
				repo.EXPECT().GetPsychologistByAccount(gomock.Any(), "acc").Return(model.Psychologist{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name:     "unknown role",
			role:     "janitor",
			wantKind: failure.KindUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := svc.ResolveActor(context.Background(), "acc", tt.role)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
