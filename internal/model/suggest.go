package model

import "strings"

// SuggestCategory guesses a category code from an item name. Matching is
// case-insensitive: exact match first, then substring match. Returns "" when
// nothing matches.
func SuggestCategory(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return ""
	}

	if code, ok := exactCategory[name]; ok {
		return code
	}

	// Substring entries are ordered more-specific first.
	for _, entry := range substringCategories {
		if containsKeyword(name, entry.keyword) {
			return entry.code
		}
	}

	return ""
}

// containsKeyword reports whether keyword occurs in name starting at a word
// boundary. Short keywords like "egg" would otherwise fire inside unrelated
// words ("veggie"), while plural forms ("chips" for "chip") should still hit.
func containsKeyword(name, keyword string) bool {
	for i := 0; ; {
		j := strings.Index(name[i:], keyword)
		if j < 0 {
			return false
		}
		pos := i + j
		if pos == 0 || name[pos-1] == ' ' {
			return true
		}
		i = pos + 1
	}
}

var exactCategory = map[string]string{
	"apple":        "produce",
	"apples":       "produce",
	"banana":       "produce",
	"bananas":      "produce",
	"orange":       "produce",
	"oranges":      "produce",
	"lemon":        "produce",
	"lime":         "produce",
	"avocado":      "produce",
	"tomato":       "produce",
	"tomatoes":     "produce",
	"potato":       "produce",
	"potatoes":     "produce",
	"onion":        "produce",
	"onions":       "produce",
	"garlic":       "produce",
	"lettuce":      "produce",
	"spinach":      "produce",
	"kale":         "produce",
	"broccoli":     "produce",
	"carrots":      "produce",
	"celery":       "produce",
	"cucumber":     "produce",
	"mushrooms":    "produce",
	"grapes":       "produce",
	"strawberries": "produce",
	"blueberries":  "produce",
	"watermelon":   "produce",
	"ginger":       "produce",
	"zucchini":     "produce",

	"milk":           "dairy",
	"eggs":           "dairy",
	"butter":         "dairy",
	"cheese":         "dairy",
	"yogurt":         "dairy",
	"cream cheese":   "dairy",
	"sour cream":     "dairy",
	"heavy cream":    "dairy",
	"cottage cheese": "dairy",

	"chicken":     "meat",
	"beef":        "meat",
	"pork":        "meat",
	"turkey":      "meat",
	"bacon":       "meat",
	"sausage":     "meat",
	"ham":         "meat",
	"steak":       "meat",
	"ground beef": "meat",
	"hot dogs":    "meat",
	"lamb":        "meat",

	"salmon":  "seafood",
	"shrimp":  "seafood",
	"tuna":    "seafood",
	"fish":    "seafood",
	"crab":    "seafood",
	"lobster": "seafood",
	"tilapia": "seafood",

	"bread":      "bakery",
	"bagels":     "bakery",
	"tortillas":  "bakery",
	"rolls":      "bakery",
	"buns":       "bakery",
	"muffins":    "bakery",
	"croissants": "bakery",
	"pita":       "bakery",

	"rice":          "pantry",
	"pasta":         "pantry",
	"flour":         "pantry",
	"sugar":         "pantry",
	"salt":          "pantry",
	"olive oil":     "pantry",
	"vinegar":       "pantry",
	"soy sauce":     "pantry",
	"ketchup":       "pantry",
	"mustard":       "pantry",
	"mayonnaise":    "pantry",
	"honey":         "pantry",
	"peanut butter": "pantry",
	"jam":           "pantry",
	"cereal":        "pantry",
	"oatmeal":       "pantry",
	"soup":          "pantry",
	"broth":         "pantry",
	"beans":         "pantry",
	"lentils":       "pantry",
	"spaghetti":     "pantry",
	"noodles":       "pantry",
	"salsa":         "pantry",

	"ice cream":      "frozen",
	"frozen pizza":   "frozen",
	"frozen veggies": "frozen",
	"frozen fruit":   "frozen",
	"popsicles":      "frozen",

	"water":           "beverages",
	"juice":           "beverages",
	"coffee":          "beverages",
	"tea":             "beverages",
	"soda":            "beverages",
	"beer":            "beverages",
	"wine":            "beverages",
	"lemonade":        "beverages",
	"sparkling water": "beverages",

	"chips":        "snacks",
	"crackers":     "snacks",
	"cookies":      "snacks",
	"popcorn":      "snacks",
	"pretzels":     "snacks",
	"granola bars": "snacks",
	"trail mix":    "snacks",
	"candy":        "snacks",
	"chocolate":    "snacks",

	"paper towels":      "household",
	"toilet paper":      "household",
	"trash bags":        "household",
	"dish soap":         "household",
	"laundry detergent": "household",
	"sponges":           "household",
	"aluminum foil":     "household",
	"light bulbs":       "household",
	"batteries":         "household",
	"napkins":           "household",
	"bleach":            "household",
	"shampoo":           "household",
	"soap":              "household",
	"toothpaste":        "household",
	"tissues":           "household",
}

type categoryKeyword struct {
	keyword string
	code    string
}

var substringCategories = []categoryKeyword{
	{"chicken breast", "meat"},
	{"chicken thigh", "meat"},
	{"ground beef", "meat"},
	{"ground turkey", "meat"},
	{"pork chop", "meat"},
	{"hot dog", "meat"},
	{"deli meat", "meat"},

	{"fish fillet", "seafood"},
	{"salmon", "seafood"},
	{"shrimp", "seafood"},
	{"tuna", "seafood"},
	{"crab", "seafood"},

	{"cream cheese", "dairy"},
	{"sour cream", "dairy"},
	{"heavy cream", "dairy"},
	{"greek yogurt", "dairy"},
	{"almond milk", "dairy"},
	{"oat milk", "dairy"},
	{"yogurt", "dairy"},
	{"cheese", "dairy"},
	{"milk", "dairy"},
	{"butter", "dairy"},
	{"cream", "dairy"},
	{"egg", "dairy"},

	{"salad mix", "produce"},
	{"green onion", "produce"},
	{"sweet potato", "produce"},
	{"bell pepper", "produce"},
	{"cherry tomato", "produce"},
	{"cauliflower", "produce"},
	{"squash", "produce"},
	{"melon", "produce"},
	{"berries", "produce"},
	{"berry", "produce"},
	{"fruit", "produce"},
	{"lettuce", "produce"},
	{"spinach", "produce"},
	{"apple", "produce"},
	{"banana", "produce"},
	{"tomato", "produce"},
	{"potato", "produce"},
	{"onion", "produce"},
	{"pepper", "produce"},
	{"carrot", "produce"},

	{"sourdough", "bakery"},
	{"whole wheat", "bakery"},
	{"bread", "bakery"},
	{"bagel", "bakery"},
	{"tortilla", "bakery"},
	{"muffin", "bakery"},
	{"croissant", "bakery"},

	{"peanut butter", "pantry"},
	{"olive oil", "pantry"},
	{"maple syrup", "pantry"},
	{"hot sauce", "pantry"},
	{"soy sauce", "pantry"},
	{"pasta sauce", "pantry"},
	{"tomato sauce", "pantry"},
	{"canned", "pantry"},
	{"cereal", "pantry"},
	{"granola", "pantry"},
	{"rice", "pantry"},
	{"pasta", "pantry"},
	{"noodle", "pantry"},
	{"flour", "pantry"},
	{"sugar", "pantry"},
	{"spice", "pantry"},
	{"seasoning", "pantry"},
	{"sauce", "pantry"},
	{"broth", "pantry"},
	{"soup", "pantry"},
	{"bean", "pantry"},

	{"ice cream", "frozen"},
	{"frozen", "frozen"},
	{"popsicle", "frozen"},

	{"sparkling water", "beverages"},
	{"orange juice", "beverages"},
	{"coffee", "beverages"},
	{"juice", "beverages"},
	{"soda", "beverages"},
	{"water", "beverages"},
	{"beer", "beverages"},
	{"wine", "beverages"},
	{"tea", "beverages"},

	{"granola bar", "snacks"},
	{"trail mix", "snacks"},
	{"chip", "snacks"},
	{"cracker", "snacks"},
	{"cookie", "snacks"},
	{"popcorn", "snacks"},
	{"pretzel", "snacks"},
	{"candy", "snacks"},
	{"chocolate", "snacks"},
	{"snack", "snacks"},

	{"paper towel", "household"},
	{"toilet paper", "household"},
	{"trash bag", "household"},
	{"garbage bag", "household"},
	{"dish soap", "household"},
	{"laundry", "household"},
	{"detergent", "household"},
	{"cleaner", "household"},
	{"cleaning", "household"},
	{"sponge", "household"},
	{"foil", "household"},
	{"battery", "household"},
	{"shampoo", "household"},
	{"toothpaste", "household"},
	{"tissue", "household"},
}
