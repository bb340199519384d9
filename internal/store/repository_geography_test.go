package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-form-keeper/models"
)

func TestNewGeographyRepository(t *testing.T) {
	repo, err := NewGeographyRepository()
	require.NoError(t, err)

	regions := repo.Regions()
	require.Len(t, regions, 16)
	assert.Equal(t, "Arica y Parinacota", regions[0])
	assert.Equal(t, "Magallanes y de la Antártica Chilena", regions[15])
	assert.Contains(t, regions, "Metropolitana de Santiago")

	for _, r := range repo.All() {
		assert.NotEmpty(t, r.Communes, r.Name)
	}
}

func TestGeographyRepository_Communes(t *testing.T) {
	repo, err := NewGeographyRepository()
	require.NoError(t, err)

	communes := repo.Communes("Metropolitana de Santiago")
	assert.Equal(t, "Santiago", communes[0])
	assert.Contains(t, communes, "Providencia")

	assert.Equal(t, communes, repo.Communes("  Metropolitana de Santiago "))
	assert.Nil(t, repo.Communes("Atlantis"))
	assert.Nil(t, repo.Communes(""))
}

func TestGeographyRepository_ReturnsCopies(t *testing.T) {
	repo, err := NewGeographyRepository()
	require.NoError(t, err)

	communes := repo.Communes("Maule")
	communes[0] = "changed"
	assert.Equal(t, "Talca", repo.Communes("Maule")[0])

	all := repo.All()
	all[0].Communes[0] = "changed"
	assert.Equal(t, "Arica", repo.All()[0].Communes[0])
}

func TestParseGeography(t *testing.T) {
	repo, err := ParseGeography([]byte(`[{"name":"North","communes":["A","B"]},{"name":"South","communes":[]}]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"North", "South"}, repo.Regions())
	assert.Equal(t, []string{"A", "B"}, repo.Communes("North"))

	_, err = ParseGeography([]byte(`{`))
	assert.Error(t, err)

	_, err = ParseGeography([]byte(`[{"name":" ","communes":["A"]}]`))
	assert.ErrorIs(t, err, ErrUnknownRegion)
}

func TestNewGeographyFrom(t *testing.T) {
	repo, err := NewGeographyFrom([]models.Region{{Name: " Maule ", Communes: []string{"Talca"}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Maule"}, repo.Regions())
	assert.Equal(t, []string{"Talca"}, repo.Communes("Maule"))
}
