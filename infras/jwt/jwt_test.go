package jwt_test

import (
	"clinic/config"
	"clinic/infras/jwt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(accessMin int) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "clinic"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = accessMin
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func TestService_GenerateAndValidate(t *testing.T) {
	svc := jwt.New(newConfig(15))

	pair, err := svc.GenerateTokenPair("acc-1", "p@example.com", "psychologist")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.UserID)
	assert.Equal(t, "psychologist", claims.Role)
	assert.NotEmpty(t, claims.TokenID)

	_, err = svc.ValidateToken(pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken(pair.RefreshToken, jwt.RefreshToken)
	assert.NoError(t, err)
}

func TestService_ValidateToken_Expired(t *testing.T) {
	svc := jwt.New(newConfig(-1))

	pair, err := svc.GenerateTokenPair("acc-1", "p@example.com", "patient")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestService_ValidateToken_Garbage(t *testing.T) {
	svc := jwt.New(newConfig(15))

	_, err := svc.ValidateToken("not-a-token", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("x", jwt.TokenType("other"))
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer token", header: "Bearer abc.def", want: "abc.def"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing token", header: "Bearer ", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_ValidateToken_Claims(t *testing.T) {
	cfg := newConfig(15)
	cfg.JWT.RefreshSecret = cfg.JWT.AccessSecret

	pair, err := jwt.New(cfg).GenerateTokenPair("acc-1", "p@example.com", "patient")
	require.NoError(t, err)

	_, err = jwt.New(cfg).ValidateToken(pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)

	other := newConfig(15)
	other.App.Name = "billing"

	_, err = jwt.New(other).ValidateToken(pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
