package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-form-keeper/models"
)

//go:embed geography.json
var geographyJSON []byte

// geographyRepository serves an immutable region table.
type geographyRepository struct {
	regions  []models.Region
	communes map[string][]string
}

// NewGeographyRepository loads the embedded region table.
func NewGeographyRepository() (GeographyRepository, error) {
	return ParseGeography(geographyJSON)
}

// ParseGeography builds a GeographyRepository from a JSON array of regions.
func ParseGeography(data []byte) (GeographyRepository, error) {
	var regions []models.Region
	if err := json.Unmarshal(data, &regions); err != nil {
		return nil, fmt.Errorf("decode geography: %w", err)
	}
	return NewGeographyFrom(regions)
}

// NewGeographyFrom builds a GeographyRepository over regions, keeping their
// order.
func NewGeographyFrom(regions []models.Region) (GeographyRepository, error) {
	repo := &geographyRepository{
		regions:  make([]models.Region, 0, len(regions)),
		communes: make(map[string][]string, len(regions)),
	}
	for _, r := range regions {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: region without a name", ErrUnknownRegion)
		}
		repo.regions = append(repo.regions, models.Region{Name: name, Communes: slices.Clone(r.Communes)})
		repo.communes[name] = r.Communes
	}
	return repo, nil
}

func (g *geographyRepository) Regions() []string {
	names := make([]string, 0, len(g.regions))
	for _, r := range g.regions {
		names = append(names, r.Name)
	}
	return names
}

// Communes returns nil for unknown regions.
func (g *geographyRepository) Communes(region string) []string {
	communes, ok := g.communes[strings.TrimSpace(region)]
	if !ok {
		return nil
	}
	return append([]string{}, communes...)
}

func (g *geographyRepository) All() []models.Region {
	out := make([]models.Region, 0, len(g.regions))
	for _, r := range g.regions {
		out = append(out, models.Region{Name: r.Name, Communes: slices.Clone(r.Communes)})
	}
	return out
}
