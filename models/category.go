package models

import "fmt"

// Category is the catalog partition an asset belongs to.
type Category string

const (
	CategoryDecks     Category = "Decks"
	CategoryGriptapes Category = "Griptapes"
	CategoryHats      Category = "Hats"
	CategoryMaps      Category = "Maps"
	CategoryPants     Category = "Pants"
	CategoryShirts    Category = "Shirts"
	CategoryShoes     Category = "Shoes"
	CategoryTrucks    Category = "Trucks"
	CategoryWheels    Category = "Wheels"
)

var categories = []Category{
	CategoryDecks,
	CategoryGriptapes,
	CategoryHats,
	CategoryMaps,
	CategoryPants,
	CategoryShirts,
	CategoryShoes,
	CategoryTrucks,
	CategoryWheels,
}

var categoryLabels = map[Category]string{
	CategoryDecks:     "Deck",
	CategoryGriptapes: "Griptape",
	CategoryHats:      "Hat",
	CategoryMaps:      "Map",
	CategoryPants:     "Pants",
	CategoryShirts:    "Shirt",
	CategoryShoes:     "Shoes",
	CategoryTrucks:    "Trucks",
	CategoryWheels:    "Wheels",
}

// Categories returns every category in enumeration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory converts a raw category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown asset category %q", s)
}

// String returns the string representation of Category.
func (c Category) String() string {
	return string(c)
}

// IsMap reports whether assets of the category are installed as maps.
func (c Category) IsMap() bool {
	return c == CategoryMaps
}

// Label returns the singular noun used on install/remove actions.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return "Asset"
}
