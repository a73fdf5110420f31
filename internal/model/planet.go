package model

// Planet is a world from the catalog.
type Planet struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	Climate        string `json:"climate" db:"climate"`
	Population     string `json:"population" db:"population"`
	OrbitalPeriod  string `json:"orbital_period" db:"orbital_period"`
	RotationPeriod string `json:"rotation_period" db:"rotation_period"`
	Diameter       string `json:"diameter" db:"diameter"`
	Terrain        string `json:"terrain" db:"terrain"`
}

// PlanetRequest is the body of POST /planets.
type PlanetRequest struct {
	Name           *string `json:"name" validate:"required"`
	Climate        *string `json:"climate" validate:"required"`
	Population     *string `json:"population" validate:"required"`
	OrbitalPeriod  *string `json:"orbital_period" validate:"required"`
	RotationPeriod *string `json:"rotation_period" validate:"required"`
	Diameter       *string `json:"diameter" validate:"required"`
	Terrain        *string `json:"terrain" validate:"required"`
}

// Planet converts a validated request into a record.
func (r PlanetRequest) Planet() Planet {
	return Planet{
		Name:           deref(r.Name),
		Climate:        deref(r.Climate),
		Population:     deref(r.Population),
		OrbitalPeriod:  deref(r.OrbitalPeriod),
		RotationPeriod: deref(r.RotationPeriod),
		Diameter:       deref(r.Diameter),
		Terrain:        deref(r.Terrain),
	}
}
