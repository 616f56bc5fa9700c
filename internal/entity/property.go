package entity

import (
	"context"
	"errors"
)

var ErrPropertyNotFound = errors.New("property not found")

type PropertyType string

const (
	Penthouse PropertyType = "Penthouse"
	Villa     PropertyType = "Villa"
	Estate    PropertyType = "Estate"
	Mansion   PropertyType = "Mansion"
)

// Property is a featured listing shown on the public site.
type Property struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Location    string       `json:"location" yaml:"location"`
	Price       string       `json:"price" yaml:"price"`
	Type        PropertyType `json:"type" yaml:"type"`
	SqFt        int          `json:"sqft" yaml:"sqft"`
	Bedrooms    int          `json:"bedrooms" yaml:"bedrooms"`
	Image       string       `json:"image" yaml:"image"`
	ROI         string       `json:"roi" yaml:"roi"`
	Description string       `json:"description" yaml:"description"`
}

type PropertyCatalog interface {
	List(ctx context.Context) ([]Property, error)
	FindByID(ctx context.Context, id string) (*Property, error)
}
