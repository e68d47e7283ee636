package finance

// Category labels transactions and budgets. Its Name is the natural key
// referenced by them; deleting a category never touches the records that
// reference it.
type Category struct {
	Record
	Name  string `gorm:"index" json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Fallback presentation for dangling category references.
const (
	FallbackIcon  = "fas fa-tag"
	FallbackColor = "#6b7280"
)

// LookupCategory resolves a category name against a fetched category list.
// A dangling reference resolves to a category with the fallback icon and
// color, so callers always get something renderable.
func LookupCategory(categories []Category, name string) Category {
	for _, c := range categories {
		if c.Name == name {
			return c
		}
	}
	return Category{Name: name, Icon: FallbackIcon, Color: FallbackColor}
}

// DefaultCategories returns the set of categories seeded into an empty store.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Alimentação", Icon: "fas fa-utensils", Color: "#ef4444"},
		{Name: "Transporte", Icon: "fas fa-car", Color: "#3b82f6"},
		{Name: "Casa", Icon: "fas fa-home", Color: "#10b981"},
		{Name: "Saúde", Icon: "fas fa-heartbeat", Color: "#f59e0b"},
		{Name: "Educação", Icon: "fas fa-graduation-cap", Color: "#8b5cf6"},
		{Name: "Entretenimento", Icon: "fas fa-gamepad", Color: "#06b6d4"},
		{Name: "Compras", Icon: "fas fa-shopping-cart", Color: "#ec4899"},
		{Name: "Trabalho", Icon: "fas fa-briefcase", Color: "#64748b"},
		{Name: "Investimentos", Icon: "fas fa-chart-line", Color: "#059669"},
		{Name: "Outros", Icon: "fas fa-ellipsis-h", Color: "#6b7280"},
	}
}
