package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryGrocery  Category = "grocery"
	CategoryPharmacy Category = "pharmacy"
	CategoryHome     Category = "home"
)

// Categories lists every category in picker order.
var Categories = []Category{CategoryGrocery, CategoryPharmacy, CategoryHome}

// DefaultCategory is preselected in the creation dialog.
const DefaultCategory = CategoryHome

// CategoryStyle holds the display attributes of one category.
type CategoryStyle struct {
	Color    string
	LabelKey string
}

var categoryStyles = map[Category]CategoryStyle{
	CategoryGrocery:  {Color: "#C8E6C9", LabelKey: "category_supermarket"},
	CategoryPharmacy: {Color: "#BBDEFB", LabelKey: "category_pharmacy"},
	CategoryHome:     {Color: "#FFECB3", LabelKey: "category_home"},
}

func (c Category) Valid() bool {
	_, ok := categoryStyles[c]
	return ok
}

// Style returns the display attributes for c. Unknown categories get a zero style.
func (c Category) Style() CategoryStyle {
	return categoryStyles[c]
}

// ParseCategory normalizes user/config input into a Category.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, raw)
	}
	return c, nil
}
