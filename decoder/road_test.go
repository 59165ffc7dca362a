package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strp(s string) *string { return &s }

func TestRoadNameWithSeparateRef(t *testing.T) {
	r := newRoad("Main Street (NH 101)", strp("NH 101"), nil, nil)
	assert.Equal(t, []string{"Main Street"}, r.names)
	assert.Equal(t, []string{"NH 101"}, r.codes)

	// No parenthetical echo: ref still splits off cleanly
	r = newRoad("Main Street", strp("NH 101"), nil, nil)
	assert.Equal(t, []string{"Main Street"}, r.names)
	assert.Equal(t, []string{"NH 101"}, r.codes)
}

func TestRoadNameEqualsRef(t *testing.T) {
	r := newRoad("NH 101", strp("NH 101"), nil, nil)
	assert.Nil(t, r.names)
	assert.Equal(t, []string{"NH 101"}, r.codes)
}

func TestRoadLegacyTrailingParenthetical(t *testing.T) {
	r := newRoad("Main Street (NH 101)", nil, nil, nil)
	assert.Equal(t, []string{"Main Street"}, r.names)
	assert.Equal(t, []string{"NH 101"}, r.codes)

	// Multiple codes inside the parenthetical
	r = newRoad("Purple Heart Trail (I 80; US 30)", nil, nil, nil)
	assert.Equal(t, []string{"Purple Heart Trail"}, r.names)
	assert.Equal(t, []string{"I 80", "US 30"}, r.codes)

	// Interior parenthetical is not a ref encoding
	r = newRoad("Main (South) Street", nil, nil, nil)
	assert.Equal(t, []string{"Main (South) Street"}, r.names)
	assert.Nil(t, r.codes)
}

func TestRoadPlainName(t *testing.T) {
	r := newRoad("A;B;C", nil, nil, nil)
	assert.Equal(t, []string{"A", "B", "C"}, r.names)
	assert.Nil(t, r.codes)

	r = newRoad(" A ; ;B ", nil, nil, nil)
	assert.Equal(t, []string{"A", "B"}, r.names)
}

func TestRoadEmptyName(t *testing.T) {
	r := newRoad("", nil, nil, nil)
	assert.Nil(t, r.names)
	assert.Nil(t, r.codes)

	r = newRoad("", strp("NH 101"), nil, nil)
	assert.Nil(t, r.names)
	assert.Equal(t, []string{"NH 101"}, r.codes)
}

func TestRoadDestinations(t *testing.T) {
	r := newRoad("", nil, strp("I 95 South: Boston, Providence"), nil)
	assert.Equal(t, []string{"I 95 South"}, r.destinationCodes)
	assert.Equal(t, []string{"Boston", "Providence"}, r.destinations)

	r = newRoad("", nil, strp("Boston, Providence"), nil)
	assert.Nil(t, r.destinationCodes)
	assert.Equal(t, []string{"Boston", "Providence"}, r.destinations)

	// Only the first ": " splits; the remainder stays part of the names
	r = newRoad("", nil, strp("I 95: Boston: Downtown"), nil)
	assert.Equal(t, []string{"I 95"}, r.destinationCodes)
	assert.Equal(t, []string{"Boston: Downtown"}, r.destinations)
}

func TestRoadRotaryNames(t *testing.T) {
	r := newRoad("5th Ave", nil, nil, strp("Columbus Circle"))
	assert.Equal(t, []string{"5th Ave"}, r.names)
	assert.Equal(t, []string{"Columbus Circle"}, r.rotaryNames)

	r = newRoad("", nil, nil, strp("Columbus Circle; Grand Army Plaza"))
	assert.Equal(t, []string{"Columbus Circle", "Grand Army Plaza"}, r.rotaryNames)
}
