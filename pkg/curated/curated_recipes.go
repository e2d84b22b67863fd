package curated

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"Local-Flavor-Backend/domain"
)

// namespace keeps curated ids stable between the static table and seeded rows.
var namespace = uuid.MustParse("6f1c9a2e-4b57-4d8e-9a53-1f0e2c7b8d41")

type entry struct {
	name         string
	ingredients  string
	instructions string
	lat, lng     float64
	locationName string
	city         string
	country      string
}

var entries = []entry{
	{
		name:         "Pizza Margherita",
		ingredients:  "500g 00 flour, 325ml water, 10g salt, 7g fresh yeast\n400g San Marzano tomatoes, 250g buffalo mozzarella, fresh basil, extra virgin olive oil",
		instructions: "1. Mix flour, water, salt and yeast and knead until elastic.\n2. Rise for 2 hours, portion into balls and rise another hour.\n3. Stretch thin, top with crushed tomatoes and torn mozzarella.\n4. Bake in the hottest oven possible for 4-5 minutes.\n5. Finish with basil and olive oil.",
		lat:          40.8358, lng: 14.2488, locationName: "Naples, Italy", city: "Naples", country: "Italy",
	},
	{
		name:         "Pasta alla Genovese",
		ingredients:  "1kg beef shoulder, 2kg yellow onions, 100g pancetta, 1 carrot, 1 celery stalk, 500g ziti, 100ml white wine, olive oil, Parmesan",
		instructions: "1. Render pancetta in olive oil and brown the beef.\n2. Add carrot, celery and all the onions.\n3. Cover and cook on low for 2-3 hours until the onions melt.\n4. Add wine and reduce.\n5. Toss with ziti and serve with Parmesan.",
		lat:          40.8358, lng: 14.2488, locationName: "Naples, Italy", city: "Naples", country: "Italy",
	},
	{
		name:         "Sfogliatella",
		ingredients:  "500g flour, 200ml warm water, 100g lard, salt\n300g semolina, 500ml milk, 250g ricotta, 150g sugar, 2 eggs, candied citrus peel, cinnamon, lemon zest",
		instructions: "1. Make a stiff dough, roll very thin and brush with lard.\n2. Roll up tightly and chill for 2 hours.\n3. Cook semolina in milk, cool, then mix with ricotta, sugar, eggs, peel and spices.\n4. Slice the roll, shape into cones and fill.\n5. Bake at 200C until golden and dust with powdered sugar.",
		lat:          40.8358, lng: 14.2488, locationName: "Naples, Italy", city: "Naples", country: "Italy",
	},
	{
		name:         "Risotto alla Milanese",
		ingredients:  "320g Carnaroli rice, 1l warm beef stock, 1 small onion, 50g butter, 30g bone marrow, 100ml dry white wine, saffron, 60g Parmesan",
		instructions: "1. Soften onion in butter and marrow.\n2. Toast the rice, then add wine and let it evaporate.\n3. Add stock a ladle at a time, stirring.\n4. Stir in saffron after 10 minutes.\n5. Off the heat, beat in butter and Parmesan and rest 2 minutes.",
		lat:          45.4642, lng: 9.1900, locationName: "Milan, Italy", city: "Milan", country: "Italy",
	},
	{
		name:         "Cotoletta alla Milanese",
		ingredients:  "4 bone-in veal cutlets, 2 eggs, 200g breadcrumbs, 100g clarified butter, 1 lemon, salt",
		instructions: "1. Pound the cutlets thin, keeping the bone.\n2. Salt, dip in egg and press into breadcrumbs.\n3. Fry in clarified butter about 4 minutes per side.\n4. Drain and serve with lemon wedges.",
		lat:          45.4642, lng: 9.1900, locationName: "Milan, Italy", city: "Milan", country: "Italy",
	},
	{
		name:         "Panettone",
		ingredients:  "500g Manitoba flour, 100g sugar, 150g butter, 3 eggs, 100ml milk, 15g fresh yeast, 100g raisins, candied orange and citron, vanilla, citrus zest, salt",
		instructions: "1. Activate yeast in warm milk.\n2. Knead flour, sugar, eggs, butter and yeast until elastic.\n3. Fold in soaked raisins and candied fruit.\n4. Proof in a paper mould until doubled.\n5. Bake at 180C for about 45 minutes and cool upside down.",
		lat:          45.4642, lng: 9.1900, locationName: "Milan, Italy", city: "Milan", country: "Italy",
	},
	{
		name:         "Vada Pav",
		ingredients:  "4 boiled potatoes, green chilies, ginger, garlic, mustard seeds, curry leaves, turmeric\n1 cup gram flour, chili powder, asafoetida\n8 pav buns, green and tamarind chutney, garlic chutney",
		instructions: "1. Temper mustard seeds and curry leaves, add aromatics and potatoes.\n2. Season, cool and shape into patties.\n3. Dip in spiced gram flour batter and deep fry.\n4. Split the pav, spread chutneys and add the hot vada.",
		lat:          19.0760, lng: 72.8777, locationName: "Mumbai, India", city: "Mumbai", country: "India",
	},
	{
		name:         "Pav Bhaji",
		ingredients:  "4 potatoes, cauliflower, peas, carrots, 2 onions, 2 tomatoes, 2 bell peppers, pav bhaji masala, chili powder, turmeric, butter, lemon, coriander, 8 pav buns",
		instructions: "1. Fry onion and peppers in butter, add tomatoes and spices.\n2. Add the boiled vegetables and mash while cooking.\n3. Simmer 15-20 minutes.\n4. Toast buttered pav and serve with raw onion, coriander and lemon.",
		lat:          19.0760, lng: 72.8777, locationName: "Mumbai, India", city: "Mumbai", country: "India",
	},
	{
		name:         "Austin Breakfast Tacos",
		ingredients:  "8 tortillas, 8 eggs, 250g breakfast sausage or bacon, 2 potatoes, cheddar, 1 avocado, salsa, cilantro, lime, hot sauce",
		instructions: "1. Warm the tortillas.\n2. Layer scrambled eggs, meat, crispy potatoes and cheese.\n3. Top with avocado, salsa and cilantro.\n4. Wrap in foil and serve with lime and hot sauce.",
		lat:          30.2672, lng: -97.7431, locationName: "Austin, Texas, USA", city: "Austin", country: "USA",
	},
	{
		name:         "Traditional Fish and Chips",
		ingredients:  "4 cod fillets, 200g flour, 1 tsp baking powder, 300ml cold beer, 1kg Maris Piper potatoes, oil for frying, malt vinegar, tartar sauce",
		instructions: "1. Cut thick chips and blanch at 130C.\n2. Whisk flour, baking powder, salt and beer into a batter.\n3. Fry battered fish at 180C until golden.\n4. Fry the chips again until crisp.\n5. Serve with vinegar and tartar sauce.",
		lat:          51.5074, lng: -0.1278, locationName: "London, United Kingdom", city: "London", country: "United Kingdom",
	},
	{
		name:         "Chicken Tagine with Preserved Lemons",
		ingredients:  "1 chicken in pieces, 2 preserved lemons, 1 onion, garlic, ginger, cumin, coriander, paprika, turmeric, saffron, cinnamon stick, green olives, cilantro, parsley, chicken broth",
		instructions: "1. Soften onion, add garlic, ginger and spices.\n2. Brown the chicken.\n3. Add broth and cinnamon and simmer covered for 45 minutes.\n4. Add preserved lemon and olives and cook 15 minutes more.\n5. Finish with fresh herbs.",
		lat:          31.6295, lng: -7.9811, locationName: "Marrakesh, Morocco", city: "Marrakesh", country: "Morocco",
	},
	{
		name:         "Char Koay Teow",
		ingredients:  "400g flat rice noodles, 200g shrimp, lap cheong, 2 eggs, bean sprouts, chives, garlic, light and dark soy sauce, chili paste, white pepper",
		instructions: "1. Heat a wok until smoking.\n2. Fry garlic, sausage and shrimp.\n3. Scramble the eggs at the side.\n4. Add noodles, soy sauces and chili paste.\n5. Toss in sprouts and chives and season with white pepper.",
		lat:          5.4141, lng: 100.3296, locationName: "Georgetown, Penang, Malaysia", city: "Georgetown", country: "Malaysia",
	},
	{
		name:         "Bistecca alla Fiorentina",
		ingredients:  "1 T-bone steak at least 5cm thick, olive oil, rosemary, garlic, coarse sea salt, black pepper, lemon",
		instructions: "1. Bring the steak to room temperature.\n2. Sear over very high heat 3-5 minutes per side.\n3. Stand it on the bone to finish.\n4. Rest, season with salt and pepper and slice off the bone.",
		lat:          43.7696, lng: 11.2558, locationName: "Florence, Italy", city: "Florence", country: "Italy",
	},
	{
		name:         "New Orleans Seafood Gumbo",
		ingredients:  "1 cup oil, 1 cup flour, 2 onions, 2 bell peppers, 4 celery ribs, garlic, 2l seafood stock, okra, andouille, shrimp, crab meat, bay leaves, Creole seasoning, file powder, green onions",
		instructions: "1. Cook a dark chocolate-colored roux.\n2. Add the trinity and garlic.\n3. Whisk in stock and add sausage and seasoning.\n4. Simmer with okra for an hour.\n5. Add seafood at the end and serve over rice.",
		lat:          29.9511, lng: -90.0715, locationName: "New Orleans, Louisiana, USA", city: "New Orleans", country: "USA",
	},
	{
		name:         "Nigiri Sushi",
		ingredients:  "3 cups short-grain rice, rice vinegar, sugar, salt, assorted sashimi-grade fish, wasabi, soy sauce, pickled ginger",
		instructions: "1. Rinse and cook the rice.\n2. Season with warm sushi vinegar, folding and fanning.\n3. Slice fish against the grain.\n4. Shape small rice beds, add wasabi and drape the fish.\n5. Serve with soy sauce and ginger.",
		lat:          35.6762, lng: 139.6503, locationName: "Tokyo, Japan", city: "Tokyo", country: "Japan",
	},
	{
		name:         "Coq au Vin",
		ingredients:  "1 chicken in 8 pieces, 200g lardons, 24 pearl onions, 300g mushrooms, 3 carrots, garlic, 1 bottle red Burgundy, cognac, tomato paste, flour, thyme, bay leaves, butter, parsley",
		instructions: "1. Crisp the lardons and brown the chicken.\n2. Brown onions and mushrooms separately.\n3. Flambe with cognac, add tomato paste, flour and wine.\n4. Braise with herbs for 1.5 hours.\n5. Return the garnish and finish with parsley.",
		lat:          45.7640, lng: 4.8357, locationName: "Lyon, France", city: "Lyon", country: "France",
	},
	{
		name:         "Peruvian Ceviche",
		ingredients:  "1kg white fish, juice of 12-15 limes, 1 red onion, aji limo chilies, garlic, ginger, cilantro, sweet potato, corn",
		instructions: "1. Cover cubed fish with lime juice, garlic and ginger.\n2. Cure 15-20 minutes until opaque.\n3. Add onion, chilies and cilantro and salt to taste.\n4. Serve immediately with sweet potato and corn.",
		lat:          -12.0464, lng: -77.0428, locationName: "Lima, Peru", city: "Lima", country: "Peru",
	},
	{
		name:         "Bobotie",
		ingredients:  "1kg ground beef, 2 onions, 2 slices bread, milk, 2 eggs, curry powder, turmeric, coriander, cumin, ginger, garlic, apricot chutney, sultanas, almonds, apricot jam, bay leaves, lemon",
		instructions: "1. Soak bread in milk.\n2. Fry onion, garlic and spices, then brown the meat.\n3. Stir in bread, chutney, jam, sultanas, almonds and lemon.\n4. Top with egg and milk custard and bay leaves.\n5. Bake at 180C for 30-35 minutes.",
		lat:          -33.9249, lng: 18.4241, locationName: "Cape Town, South Africa", city: "Cape Town", country: "South Africa",
	},
	{
		name:         "Aussie Meat Pie",
		ingredients:  "500g ground beef, 1 onion, garlic, tomato paste, Worcestershire sauce, 1 cup beef stock, corn flour, Vegemite, shortcrust and puff pastry, 1 egg",
		instructions: "1. Brown onion, garlic and beef.\n2. Add paste, sauces and stock and simmer 15 minutes.\n3. Thicken with corn flour and cool.\n4. Fill shortcrust cases and top with puff pastry.\n5. Brush with egg and bake at 200C for 25 minutes.",
		lat:          -33.8688, lng: 151.2093, locationName: "Sydney, Australia", city: "Sydney", country: "Australia",
	},
}

// ID returns the stable id of a curated recipe.
func ID(name string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(name))
}

func (e entry) toRecipe() domain.Recipe {
	return domain.Recipe{
		ID:           ID(e.name).String(),
		Name:         e.name,
		Ingredients:  e.ingredients,
		Instructions: e.instructions,
		LocationLat:  e.lat,
		LocationLng:  e.lng,
		LocationName: e.locationName,
		City:         e.city,
		Country:      e.country,
		SourceType:   domain.SourceCurated,
		IsApproved:   true,
	}
}

// All returns a fresh copy of the curated dataset.
func All() []domain.Recipe {
	recipes := make([]domain.Recipe, 0, len(entries))
	for _, e := range entries {
		recipes = append(recipes, e.toRecipe())
	}
	return recipes
}

// ForCity returns the curated recipes whose city matches name, ignoring case.
func ForCity(name string) []domain.Recipe {
	name = strings.TrimSpace(name)
	var recipes []domain.Recipe
	for _, e := range entries {
		if strings.EqualFold(e.city, name) {
			recipes = append(recipes, e.toRecipe())
		}
	}
	return recipes
}

// Random picks n distinct curated recipes.
func Random(n int, rng *rand.Rand) []domain.Recipe {
	all := All()
	if n > len(all) {
		n = len(all)
	}
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	return all[:n]
}
