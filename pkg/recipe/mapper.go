package recipe

import (
	"github.com/google/uuid"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/entities"
)

func ToDomainRecipe(r *entities.Recipe) domain.Recipe {
	recipe := domain.Recipe{
		ID:           r.ID.String(),
		Name:         r.Name,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		LocationLat:  r.LocationLat,
		LocationLng:  r.LocationLng,
		LocationName: r.LocationName,
		City:         r.City,
		Country:      r.Country,
		PhotoURL:     r.PhotoURL,
		CulturalNote: r.CulturalNote,
		SourceType:   r.SourceType,
		IsApproved:   r.IsApproved,
		ApprovalDate: r.ApprovalDate,
		CreatedAt:    r.CreatedAt,
	}
	if r.UserID != nil {
		recipe.UserID = r.UserID.String()
	}
	return recipe
}

// ToEntity converts a domain recipe for persistence. An unparsable id is left
// zero so the database assigns one.
func ToEntity(r domain.Recipe) *entities.Recipe {
	e := &entities.Recipe{
		Name:         r.Name,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		LocationLat:  r.LocationLat,
		LocationLng:  r.LocationLng,
		LocationName: r.LocationName,
		City:         r.City,
		Country:      r.Country,
		PhotoURL:     r.PhotoURL,
		CulturalNote: r.CulturalNote,
		SourceType:   r.SourceType,
		IsApproved:   r.IsApproved,
		ApprovalDate: r.ApprovalDate,
	}
	if id, err := uuid.Parse(r.ID); err == nil {
		e.ID = id
	}
	if uid, err := uuid.Parse(r.UserID); err == nil {
		e.UserID = &uid
	}
	return e
}
