package model

import (
	"errors"
	"fmt"
	"strings"
)

// Category is one of a fixed set of entry labels.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryHousing       Category = "housing"
	CategoryShopping      Category = "shopping"
	CategoryHealth        Category = "health"
	CategorySalary        Category = "salary"
	CategoryFreelance     Category = "freelance"
	CategoryInvestment    Category = "investment"
	CategoryGift          Category = "gift"
	CategoryOther         Category = "other"
)

// CategoryMeta holds display metadata for a category.
type CategoryMeta struct {
	Label   string
	Icon    string
	Expense bool // offered on the expense form
	Income  bool // offered on the income form
}

// ErrUnknownCategory is returned by ParseCategory for labels outside the set.
var ErrUnknownCategory = errors.New("unknown category")

var categoryOrder = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryHousing,
	CategoryShopping,
	CategoryHealth,
	CategorySalary,
	CategoryFreelance,
	CategoryInvestment,
	CategoryGift,
	CategoryOther,
}

var categoryMeta = map[Category]CategoryMeta{
	CategoryFood:          {Label: "Alimentation", Icon: "restaurant", Expense: true},
	CategoryTransport:     {Label: "Transport", Icon: "car", Expense: true},
	CategoryEntertainment: {Label: "Loisirs", Icon: "game-controller", Expense: true},
	CategoryHousing:       {Label: "Logement", Icon: "home", Expense: true},
	CategoryShopping:      {Label: "Shopping", Icon: "cart", Expense: true},
	CategoryHealth:        {Label: "Santé", Icon: "medical", Expense: true},
	CategorySalary:        {Label: "Salaire", Icon: "wallet", Income: true},
	CategoryFreelance:     {Label: "Freelance", Icon: "briefcase", Income: true},
	CategoryInvestment:    {Label: "Investissement", Icon: "trending-up", Income: true},
	CategoryGift:          {Label: "Cadeau", Icon: "gift", Income: true},
	CategoryOther:         {Label: "Autre", Icon: "ellipsis-horizontal", Expense: true, Income: true},
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// CategoriesFor returns the categories offered for income or expense entries.
func CategoriesFor(income bool) []Category {
	var out []Category
	for _, c := range categoryOrder {
		if c.allows(income) {
			out = append(out, c)
		}
	}
	return out
}

// ParseCategory converts a label such as "Food" or " food " to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Valid reports whether c is a member of the fixed set.
func (c Category) Valid() bool {
	_, ok := categoryMeta[c]
	return ok
}

// Meta returns the display metadata for c. Unknown categories get the
// question-mark icon and their raw name as label.
func (c Category) Meta() CategoryMeta {
	if m, ok := categoryMeta[c]; ok {
		return m
	}
	return CategoryMeta{Label: string(c), Icon: "help-circle"}
}

// Label returns the display name.
func (c Category) Label() string { return c.Meta().Label }

// AllowsIncome reports whether c is offered for income entries.
func (c Category) AllowsIncome() bool { return c.Meta().Income }

// AllowsExpense reports whether c is offered for expense entries.
func (c Category) AllowsExpense() bool { return c.Meta().Expense }

func (c Category) allows(income bool) bool {
	if income {
		return c.AllowsIncome()
	}
	return c.AllowsExpense()
}
