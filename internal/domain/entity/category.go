// Package entity defines the core business entities for the domain layer.
package entity

import "strings"

// Category is one expense classification from the fixed closed set.
// The set is known at compile time and is not user-extensible.
type Category string

const (
	CategoryAlcohol          Category = "alcohol"
	CategoryCharity          Category = "charity"
	CategoryDebts            Category = "debts"
	CategoryHousehold        Category = "household"
	CategoryEatingOut        Category = "eating_out"
	CategoryHealth           Category = "health"
	CategoryCosmeticsAndCare Category = "cosmetics_and_care"
	CategoryEducation        Category = "education"
	CategoryPets             Category = "pets"
	CategoryPurchases        Category = "purchases"
	CategoryProducts         Category = "products"
	CategoryTravel           Category = "travel"
	CategoryEntertainment    Category = "entertainment"
	CategoryFriendsAndFamily Category = "friends_and_family"
	CategoryCigarettes       Category = "cigarettes"
	CategorySport            Category = "sport"
	CategoryDevices          Category = "devices"
	CategoryTransport        Category = "transport"
	CategoryServices         Category = "services"
)

// categories lists every category in declaration order. Aggregation and
// report rows iterate in exactly this order.
var categories = []Category{
	CategoryAlcohol,
	CategoryCharity,
	CategoryDebts,
	CategoryHousehold,
	CategoryEatingOut,
	CategoryHealth,
	CategoryCosmeticsAndCare,
	CategoryEducation,
	CategoryPets,
	CategoryPurchases,
	CategoryProducts,
	CategoryTravel,
	CategoryEntertainment,
	CategoryFriendsAndFamily,
	CategoryCigarettes,
	CategorySport,
	CategoryDevices,
	CategoryTransport,
	CategoryServices,
}

// categoryDisplayNames maps each category to its localized display name.
var categoryDisplayNames = map[Category]string{
	CategoryAlcohol:          "алкоголь",
	CategoryCharity:          "благотворительность",
	CategoryDebts:            "долги",
	CategoryHousehold:        "бытовые товары",
	CategoryEatingOut:        "кафе и рестораны",
	CategoryHealth:           "здоровье",
	CategoryCosmeticsAndCare: "косметика и уход",
	CategoryEducation:        "образование",
	CategoryPets:             "питомцы",
	CategoryPurchases:        "покупки",
	CategoryProducts:         "продукты",
	CategoryTravel:           "путешествия",
	CategoryEntertainment:    "развлечения",
	CategoryFriendsAndFamily: "друзья и семья",
	CategoryCigarettes:       "сигареты",
	CategorySport:            "спорт",
	CategoryDevices:          "устройства",
	CategoryTransport:        "транспорт",
	CategoryServices:         "услуги",
}

// displayNameIndex resolves a lowercased display name back to its category.
var displayNameIndex = func() map[string]Category {
	index := make(map[string]Category, len(categoryDisplayNames))
	for cat, name := range categoryDisplayNames {
		index[name] = cat
	}
	return index
}()

// Categories returns every category in declaration order.
// The returned slice must not be mutated by callers.
func Categories() []Category {
	return categories
}

// DisplayName returns the localized display name for the category.
func (c Category) DisplayName() string {
	return categoryDisplayNames[c]
}

// IsValid reports whether the category belongs to the closed set.
func (c Category) IsValid() bool {
	_, ok := categoryDisplayNames[c]
	return ok
}

// ParseCategory resolves a user-supplied token to a category. The token may
// be either the canonical key ("eating_out") or the localized display name
// ("кафе и рестораны"), matched case-insensitively.
func ParseCategory(token string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	if cat := Category(normalized); cat.IsValid() {
		return cat, true
	}
	if cat, ok := displayNameIndex[normalized]; ok {
		return cat, true
	}
	return "", false
}
