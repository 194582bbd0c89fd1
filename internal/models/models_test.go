package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseModelBeforeCreateGeneratesID(t *testing.T) {
	m := &BaseModel{}
	require.NoError(t, m.BeforeCreate(nil))
	require.NotEmpty(t, m.ID)

	keep := &BaseModel{ID: "fixed-id"}
	require.NoError(t, keep.BeforeCreate(nil))
	require.Equal(t, "fixed-id", keep.ID)
}

func TestPropertyNormalise(t *testing.T) {
	p := &Property{Name: "  Sea View Villa ", City: " Mumbai ", Status: " Available "}
	p.Normalise()

	require.Equal(t, "Sea View Villa", p.Name)
	require.Equal(t, "Mumbai", p.City)
	require.Equal(t, PropertyStatusAvailable, p.Status)
}

func TestPropertyMappable(t *testing.T) {
	lat, lng := 19.076, 72.8777

	require.False(t, (&Property{}).Mappable())
	require.False(t, (&Property{Latitude: &lat}).Mappable())
	require.True(t, (&Property{Latitude: &lat, Longitude: &lng}).Mappable())
}
