package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ValidationError collects field-level problems shown next to the form.
type ValidationError struct {
	Errors []string `json:"errors"`
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) add(msg string) {
	e.Errors = append(e.Errors, msg)
}

// Err returns nil when nothing was collected.
func (e *ValidationError) Err() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9-]+$`)
)

func lengthBetween(v string, min, max int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(v))
	return n >= min && n <= max
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug) && len(slug) >= 3 && len(slug) <= 50
}

func ValidPrice(price float64) bool {
	return price >= 0 && price <= 9999.99
}

func ValidateRestaurant(r Restaurant) error {
	v := &ValidationError{}
	switch {
	case strings.TrimSpace(r.Name) == "":
		v.add("Restaurant name is required")
	case !lengthBetween(r.Name, 2, 100):
		v.add("Restaurant name must be between 2 and 100 characters")
	}
	switch {
	case strings.TrimSpace(r.Slug) == "":
		v.add("URL slug is required")
	case !ValidSlug(r.Slug):
		v.add("URL slug must contain only lowercase letters, numbers, and hyphens")
	}
	if r.Description != "" && !lengthBetween(r.Description, 0, 1000) {
		v.add("Description must be less than 1000 characters")
	}
	return v.Err()
}

func ValidateMenuItem(m MenuItem) error {
	v := &ValidationError{}
	switch {
	case strings.TrimSpace(m.Name) == "":
		v.add("Item name is required")
	case !lengthBetween(m.Name, 2, 100):
		v.add("Item name must be between 2 and 100 characters")
	}
	if !ValidPrice(m.Price) {
		v.add("Price must be a valid number between 0 and 9999.99")
	}
	if m.Description != "" && !lengthBetween(m.Description, 0, 500) {
		v.add("Description must be less than 500 characters")
	}
	if strings.TrimSpace(m.CategoryID) == "" {
		v.add("Category is required")
	}
	return v.Err()
}

func ValidateStaff(s StaffRequest) error {
	v := &ValidationError{}
	switch {
	case strings.TrimSpace(s.Email) == "":
		v.add("Email is required")
	case !ValidEmail(s.Email):
		v.add("Please enter a valid email address")
	}
	valid := false
	for _, r := range StaffRoles {
		if s.Role == r {
			valid = true
		}
	}
	if !valid {
		v.add("Please select a valid role")
	}
	if strings.TrimSpace(s.RestaurantID) == "" {
		v.add("Restaurant is required")
	}
	return v.Err()
}

func ValidateTableName(name string) error {
	if !lengthBetween(name, 1, 50) {
		return &ValidationError{Errors: []string{"Table name must be between 1 and 50 characters"}}
	}
	return nil
}

func ValidateCategory(c Category) error {
	if !lengthBetween(c.Name, 1, 100) {
		return &ValidationError{Errors: []string{"Category name must be between 1 and 100 characters"}}
	}
	return nil
}

// ValidateLines checks the shape of submitted order lines.
func ValidateLines(lines []OrderLine) error {
	v := &ValidationError{}
	if len(lines) == 0 {
		v.add("Order must contain at least one item")
	}
	for _, l := range lines {
		if strings.TrimSpace(l.MenuItemID) == "" {
			v.add("Menu item is required")
		}
		if l.Quantity < 1 {
			v.add("Quantity must be at least 1")
		}
	}
	return v.Err()
}
