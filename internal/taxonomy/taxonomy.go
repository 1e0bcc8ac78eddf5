// Package taxonomy defines the fixed two-level category system used to
// organize saved prompts. The tables are declared at build time and are
// immutable; declaration order is significant because keyword scoring breaks
// ties in favor of the first declared entry.
package taxonomy

// CategoryID is the slug of a top-level category.
type CategoryID string

// SubcategoryID is the slug of a second-level category.
type SubcategoryID string

const (
	SoftwareDev    CategoryID = "software-development"
	ContentWriting CategoryID = "content-writing"
	Marketing      CategoryID = "marketing-advertising"
	SEOResearch    CategoryID = "seo-research"
	BusinessComm   CategoryID = "business-communication"
	Education      CategoryID = "education-learning"
	CreativeDesign CategoryID = "creative-design"
	DataAnalytics  CategoryID = "data-analytics"
	Productivity   CategoryID = "productivity-planning"
	General        CategoryID = "general-other"
)

// Uncategorized is the subcategory assigned when there is no signal to
// classify on.
const Uncategorized SubcategoryID = "uncategorized"

// Category is the metadata for a top-level category.
type Category struct {
	ID          CategoryID
	Name        string
	Description string
	Icon        string
	Keywords    []string
}

// Subcategory is the metadata for a second-level category. Parent always
// names a declared Category.
type Subcategory struct {
	ID          SubcategoryID
	Name        string
	Description string
	Parent      CategoryID
	Icon        string
	Keywords    []string
}

var (
	categoryIndex    map[CategoryID]*Category
	subcategoryIndex map[SubcategoryID]*Subcategory
	childrenIndex    map[CategoryID][]*Subcategory
)

func init() {
	categoryIndex = make(map[CategoryID]*Category, len(categories))
	for i := range categories {
		categoryIndex[categories[i].ID] = &categories[i]
	}
	subcategoryIndex = make(map[SubcategoryID]*Subcategory, len(subcategories))
	childrenIndex = make(map[CategoryID][]*Subcategory)
	for i := range subcategories {
		sub := &subcategories[i]
		if _, ok := categoryIndex[sub.Parent]; !ok {
			panic("taxonomy: subcategory " + string(sub.ID) + " has unknown parent " + string(sub.Parent))
		}
		subcategoryIndex[sub.ID] = sub
		childrenIndex[sub.Parent] = append(childrenIndex[sub.Parent], sub)
	}
	for i := range categories {
		if len(childrenIndex[categories[i].ID]) == 0 {
			panic("taxonomy: category " + string(categories[i].ID) + " has no subcategories")
		}
	}
}

// Categories returns all categories in declaration order.
func Categories() []Category { return categories }

// Subcategories returns all subcategories in declaration order.
func Subcategories() []Subcategory { return subcategories }

// CategoryByID resolves a category slug.
func CategoryByID(id CategoryID) (*Category, bool) {
	c, ok := categoryIndex[id]
	return c, ok
}

// SubcategoryByID resolves a subcategory slug.
func SubcategoryByID(id SubcategoryID) (*Subcategory, bool) {
	s, ok := subcategoryIndex[id]
	return s, ok
}

// SubcategoriesOf returns the subcategories of a category in declaration order.
func SubcategoriesOf(id CategoryID) []*Subcategory {
	return childrenIndex[id]
}

// FirstSubcategoryOf returns the first declared subcategory of a category.
// It is the safe default when a subcategory cannot be determined.
func FirstSubcategoryOf(id CategoryID) SubcategoryID {
	children := childrenIndex[id]
	if len(children) == 0 {
		return Uncategorized
	}
	return children[0].ID
}

// ValidCategory reports whether the slug names a declared category.
func ValidCategory(id CategoryID) bool {
	_, ok := categoryIndex[id]
	return ok
}

// ValidSubcategory reports whether the slug names a declared subcategory.
func ValidSubcategory(id SubcategoryID) bool {
	_, ok := subcategoryIndex[id]
	return ok
}
