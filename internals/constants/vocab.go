package constants

// Controlled vocabularies for submission tag editing. Tag toggles outside
// these lists are rejected at the API boundary and inside the dashboard.

const (
	TagCategoryMaterial = "material"
	TagCategoryColor    = "color"
	TagCategoryFunction = "function"
)

var MaterialOptions = []string{"Alloy", "Wood", "Plastic", "Glass", "Fabric", "Composite"}

var ColorOptions = []string{"Red", "Blue", "Green", "Black", "White", "Yellow"}

var FunctionOptions = []string{
	"Organization & Storage",
	"Life Improvement & Decor",
	"Health & Wellness",
	"Innovative Gadgets & Tools",
	"Accessibility & Mobility Solutions",
}

// TagOptions returns the allowed values for a category, false for an
// unknown category.
func TagOptions(category string) ([]string, bool) {
	switch category {
	case TagCategoryMaterial:
		return MaterialOptions, true
	case TagCategoryColor:
		return ColorOptions, true
	case TagCategoryFunction:
		return FunctionOptions, true
	default:
		return nil, false
	}
}

func IsAllowedTag(category, value string) bool {
	opts, ok := TagOptions(category)
	if !ok {
		return false
	}
	for _, v := range opts {
		if v == value {
			return true
		}
	}
	return false
}
