package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/mock"
)

func TestGeographyService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockGeographyRepository(ctrl)
	repo.EXPECT().Regions().Return([]string{"Maule", "Aysén"})
	repo.EXPECT().Communes("Maule").Return([]string{"Talca", "Curicó"})
	repo.EXPECT().Communes("Atlantis").Return(nil)
	repo.EXPECT().Communes("Empty").Return([]string{})

	svc := NewGeographyService(repo, logger.Nop())
	ctx := context.Background()

	assert.Equal(t, []string{"Maule", "Aysén"}, svc.Regions(ctx))

	communes, err := svc.Communes(ctx, "Maule")
	require.NoError(t, err)
	assert.Equal(t, []string{"Talca", "Curicó"}, communes)

	_, err = svc.Communes(ctx, "Atlantis")
	assert.ErrorIs(t, err, ErrUnknownRegion)

	communes, err = svc.Communes(ctx, "Empty")
	require.NoError(t, err)
	assert.Empty(t, communes)
}

func TestAppInfoService(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.4.0"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", svc.Version(context.Background()))

	_, err = NewAppInfoService(config.App{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)

	_, err = NewAppInfoService(config.App{Version: "  "}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
