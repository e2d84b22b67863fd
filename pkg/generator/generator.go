package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"Local-Flavor-Backend/pkg/geo"
)

const MaxDishes = 10

type (
	// Request names the place recipes are wanted for. Place is a city name
	// when one was resolved, otherwise a coarse region label.
	Request struct {
		Place    string
		Location geo.Point
	}

	Dish struct {
		Name         string `json:"name" validate:"required,max=255"`
		Ingredients  string `json:"ingredients" validate:"required"`
		Instructions string `json:"instructions" validate:"required"`
		CulturalNote string `json:"cultural_note" validate:"max=2000"`
	}

	Result struct {
		Dishes  []Dish `json:"dishes" validate:"required,min=1,max=10,dive"`
		City    string `json:"city" validate:"max=128"`
		Country string `json:"country" validate:"max=128"`
	}

	Generator interface {
		Generate(ctx context.Context, req Request) (Result, error)
	}
)

var schema = validator.New()

// ValidateResult enforces the response schema at the generator boundary.
func ValidateResult(res *Result) error {
	for i := range res.Dishes {
		d := &res.Dishes[i]
		d.Name = strings.TrimSpace(d.Name)
		d.Ingredients = strings.TrimSpace(d.Ingredients)
		d.Instructions = strings.TrimSpace(d.Instructions)
		d.CulturalNote = strings.TrimSpace(d.CulturalNote)
	}
	res.City = strings.TrimSpace(res.City)
	res.Country = strings.TrimSpace(res.Country)

	if err := schema.Struct(res); err != nil {
		return fmt.Errorf("generated recipes failed schema validation: %w", err)
	}
	return nil
}
