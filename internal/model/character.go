package model

// Character is a person from the catalog.
type Character struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	BirthYear string `json:"birth_year" db:"birth_year"`
	Gender    string `json:"gender" db:"gender"`
	Height    string `json:"height" db:"height"`
	SkinColor string `json:"skin_color" db:"skin_color"`
	HairColor string `json:"hair_color" db:"hair_color"`
	EyeColor  string `json:"eye_color" db:"eye_color"`
}

// CharacterRequest is the body of POST /characters. Pointers distinguish a
// missing field from an empty one; only missing fields are rejected.
type CharacterRequest struct {
	Name      *string `json:"name" validate:"required"`
	BirthYear *string `json:"birth_year" validate:"required" label:"birth year"`
	Gender    *string `json:"gender" validate:"required"`
	Height    *string `json:"height" validate:"required"`
	SkinColor *string `json:"skin_color" validate:"required" label:"skin color"`
	HairColor *string `json:"hair_color" validate:"required" label:"hair color"`
	EyeColor  *string `json:"eye_color" validate:"required" label:"eye color"`
}

// Character converts a validated request into a record.
func (r CharacterRequest) Character() Character {
	return Character{
		Name:      deref(r.Name),
		BirthYear: deref(r.BirthYear),
		Gender:    deref(r.Gender),
		Height:    deref(r.Height),
		SkinColor: deref(r.SkinColor),
		HairColor: deref(r.HairColor),
		EyeColor:  deref(r.EyeColor),
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
