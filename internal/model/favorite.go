package model

import "github.com/goccy/go-json"

// Favorite links a user to a character, a planet, or both. A nil link is
// stored as NULL. Referenced ids are not checked against their tables.
type Favorite struct {
	ID           int64  `json:"id" db:"id"`
	UserID       int64  `json:"user_id" db:"user_id"`
	CharactersID *int64 `json:"characters_id" db:"characters_id"`
	PlanetsID    *int64 `json:"planets_id" db:"planets_id"`
}

// FavoriteRequest is the body of POST /favorites. Every key must be sent;
// planets_id and characters_id may be null.
type FavoriteRequest struct {
	PlanetsID    *int64 `json:"planets_id" validate:"present"`
	CharactersID *int64 `json:"characters_id" validate:"present"`
	UserID       *int64 `json:"user_id" validate:"required"`

	// Present holds the keys found in the body, including keys set to null.
	Present map[string]bool `json:"-"`
}

// UnmarshalJSON decodes the body and records which keys it carried.
func (r *FavoriteRequest) UnmarshalJSON(data []byte) error {
	var keys map[string]any
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	type fields FavoriteRequest
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	*r = FavoriteRequest(f)
	r.Present = make(map[string]bool, len(keys))
	for k := range keys {
		r.Present[k] = true
	}
	return nil
}

// Favorite converts a validated request into a record.
func (r FavoriteRequest) Favorite() Favorite {
	return Favorite{
		UserID:       deref(r.UserID),
		CharactersID: r.CharactersID,
		PlanetsID:    r.PlanetsID,
	}
}
