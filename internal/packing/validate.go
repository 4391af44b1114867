package packing

import (
	"strings"
	"time"

	"github.com/idilsaglam/packlist/internal/model"
)

// DateLayout is the calendar date format used on the wire and in input.
const DateLayout = "2006-01-02"

func (s *Store) checkTripName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("name", "Invalid trip name", "Trip name is required")
	}
	return name, nil
}

// checkDate accepts an empty date, otherwise a YYYY-MM-DD date that is not
// before today's calendar date.
func (s *Store) checkDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return "", nil
	}
	now := s.now()
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return "", invalid("date", "Invalid date", "Trip date must be a calendar date (YYYY-MM-DD)")
	}
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return "", invalid("date", "Invalid date", "Trip date cannot be in the past")
	}
	return date, nil
}

func checkCategoryName(t model.Trip, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("name", "Failed to add category", "Category name cannot be empty")
	}
	for _, c := range t.Categories {
		if sameName(c.Name, name) {
			return "", invalid("name", "Failed to add category", "A category with this name already exists")
		}
	}
	return name, nil
}

func checkItemName(c model.Category, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("name", "Failed to add item", "Item name cannot be empty")
	}
	for _, it := range c.Items {
		if sameName(it.Name, name) {
			return "", invalid("name", "Failed to add item", "An item with this name already exists")
		}
	}
	return name, nil
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
