package actor_test

import (
	"clinic/shared/actor"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw     string
		want    actor.Role
		wantErr bool
	}{
		{raw: "patient", want: actor.RolePatient},
		{raw: "Psychologist", want: actor.RolePsychologist},
		{raw: " admin ", want: actor.RoleAdmin},
		{raw: "1", want: actor.RoleAdmin},
		{raw: "2", want: actor.RolePsychologist},
		{raw: "3", want: actor.RolePatient},
		{raw: "4", wantErr: true},
		{raw: "superadmin", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := actor.ParseRole(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, actor.RoleUnknown, got)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActor_Ownership(t *testing.T) {
	patient := actor.Actor{AccountID: "a", ID: 7, Role: actor.RolePatient}
	psychologist := actor.Actor{AccountID: "b", ID: 7, Role: actor.RolePsychologist}
	admin := actor.Actor{AccountID: "c", Role: actor.RoleAdmin}

	assert.True(t, patient.IsPatientOf(7))
	assert.False(t, patient.IsPsychologistOf(7))
	assert.True(t, psychologist.IsPsychologistOf(7))
	assert.False(t, psychologist.IsPatientOf(7))
	assert.False(t, admin.IsPatientOf(0))

	assert.True(t, patient.Valid())
	assert.True(t, admin.Valid())
	assert.False(t, actor.Actor{Role: actor.RolePatient}.Valid())
	assert.False(t, actor.Actor{ID: 3}.Valid())
}

func TestContext(t *testing.T) {
	_, ok := actor.FromContext(context.Background())
	assert.False(t, ok)

	want := actor.Actor{AccountID: "acc", ID: 3, Role: actor.RolePsychologist}
	got, ok := actor.FromContext(actor.WithContext(context.Background(), want))

	assert.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, "psychologist", got.Role.String())
}

func TestRequire(t *testing.T) {
	_, err := actor.Require(context.Background())
	assert.Error(t, err)

	_, err = actor.Require(actor.WithContext(context.Background(), actor.Actor{Role: actor.RolePatient}))
	assert.Error(t, err)

	got, err := actor.Require(actor.WithContext(context.Background(), actor.Actor{AccountID: "acc", Role: actor.RoleAdmin}))
	assert.NoError(t, err)
	assert.True(t, got.IsAdmin())
}
