package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_DecodesPlainString(t *testing.T) {
	var l Location
	require.NoError(t, json.Unmarshal([]byte(`"UFMG"`), &l))
	assert.Equal(t, "UFMG", l.Name)
	assert.False(t, l.IsPlace())
}

func TestLocation_DecodesStructuredPlace(t *testing.T) {
	blob := `{"name":"Mineirão","address":"Av. Antônio Abrahão Caram, 1001","latitude":-19.865,"longitude":-43.971}`

	var l Location
	require.NoError(t, json.Unmarshal([]byte(blob), &l))
	assert.Equal(t, "Mineirão", l.Name)
	assert.Equal(t, "Av. Antônio Abrahão Caram, 1001", l.Address)
	assert.True(t, l.IsPlace())
}

func TestLocation_PlainValueKeepsStringShape(t *testing.T) {
	blob, err := json.Marshal(Plain("Savassi"))
	require.NoError(t, err)
	assert.Equal(t, `"Savassi"`, string(blob))
}

func TestLocation_PlaceRoundTrip(t *testing.T) {
	place := Location{Name: "Campus", Address: "Av. Pres. Antônio Carlos, 6627", Latitude: -19.87, Longitude: -43.96}

	blob, err := json.Marshal(place)
	require.NoError(t, err)

	var decoded Location
	require.NoError(t, json.Unmarshal(blob, &decoded))
	assert.Equal(t, place, decoded)
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "Savassi", Plain("Savassi").String())
	assert.Equal(t, "Campus (Av. X, 1)", Location{Name: "Campus", Address: "Av. X, 1"}.String())
}
