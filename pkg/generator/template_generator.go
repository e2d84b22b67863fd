package generator

import (
	"context"
	"fmt"
	"strings"
)

const templateDishCount = 3

// Template fabricates placeholder dishes named after the place. It never
// fails and is used whenever the external generator is unavailable.
type Template struct{}

func NewTemplate() *Template {
	return &Template{}
}

func (t *Template) Generate(_ context.Context, req Request) (Result, error) {
	place := strings.TrimSpace(req.Place)
	if place == "" {
		place = "Local"
	}

	dishes := make([]Dish, 0, templateDishCount)
	for i := 1; i <= templateDishCount; i++ {
		name := fmt.Sprintf("%s Specialty %d", place, i)
		dishes = append(dishes, Dish{
			Name:         name,
			Ingredients:  "Basic ingredients for " + name,
			Instructions: "1. Prepare ingredients\n2. Cook according to local tradition\n3. Serve and enjoy",
			CulturalNote: fmt.Sprintf("%s is a traditional dish from %s.", name, place),
		})
	}

	return Result{Dishes: dishes}, nil
}
