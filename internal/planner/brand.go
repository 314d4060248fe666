package planner

import "strings"

// Brand is one canonical chain brand with its matching aliases.
type Brand struct {
	Name    string
	Aliases []string
}

// DefaultBrands returns the built-in brand table. Order matters: a shop name
// matching several brands is classified to the first declared one.
func DefaultBrands() []Brand {
	return []Brand{
		{Name: "麦当劳", Aliases: []string{"麦当劳", "McDonald"}},
		{Name: "肯德基", Aliases: []string{"肯德基", "KFC"}},
		{Name: "星巴克", Aliases: []string{"星巴克", "Starbucks"}},
		{Name: "必胜客", Aliases: []string{"必胜客", "Pizza Hut", "pizzahut"}},
		{Name: "汉堡王", Aliases: []string{"汉堡王", "Burger King", "burgerking"}},
		{Name: "德克士", Aliases: []string{"德克士"}},
		{Name: "全家", Aliases: []string{"全家", "FamilyMart"}},
		{Name: "7-Eleven", Aliases: []string{"7-Eleven", "711", "7-11"}},
		{Name: "便利蜂", Aliases: []string{"便利蜂"}},
		{Name: "罗森", Aliases: []string{"罗森", "Lawson"}},
	}
}

// Classifier decides whether a shop name belongs to a known chain brand.
type Classifier struct {
	brands []Brand
}

func NewClassifier(brands []Brand) *Classifier {
	return &Classifier{brands: brands}
}

// Classify matches the shop name against brand aliases with case-insensitive
// substring matching. The first declared brand with a matching alias wins.
// Returns ("", false) for private shops.
func (c *Classifier) Classify(shopName string) (string, bool) {
	name := strings.ToLower(shopName)
	for _, brand := range c.brands {
		for _, alias := range brand.Aliases {
			if strings.Contains(name, strings.ToLower(alias)) {
				return brand.Name, true
			}
		}
	}
	return "", false
}
