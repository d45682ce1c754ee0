package validation

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	Name string       `json:"nombre" validate:"required,max=10"`
	Lat  null.Float64 `json:"lat" validate:"omitempty,lat_range"`
	Lng  null.Float64 `json:"lng" validate:"omitempty,lng_range"`
}

func (p point) Coordinates() (null.Float64, null.Float64) { return p.Lat, p.Lng }

type requiredPoint struct {
	Lat null.Float64 `json:"lat" validate:"required,lat_range"`
	Lng null.Float64 `json:"lng" validate:"required,lng_range"`
}

func (p requiredPoint) Coordinates() (null.Float64, null.Float64) { return p.Lat, p.Lng }

func TestValidate_OptionalCoordinates(t *testing.T) {
	v := New(point{}, requiredPoint{})

	assert.NoError(t, v.Validate(point{Name: "A"}))
	assert.NoError(t, v.Validate(point{Name: "A", Lat: null.Float64From(-17.78), Lng: null.Float64From(-63.18)}))
	assert.NoError(t, v.Validate(point{Name: "A", Lat: null.Float64From(90), Lng: null.Float64From(180)}))
}

func TestValidate_CoordinatePairRule(t *testing.T) {
	v := New(point{})

	err := v.Validate(point{Name: "A", Lat: null.Float64From(-17.78)})
	require.Error(t, err)

	fe := Translate(err, nil)
	assert.Equal(t, CoordsPairMessage, fe["lng"])
	assert.False(t, fe.Has("lat"))

	fe = Translate(v.Validate(point{Name: "A", Lng: null.Float64From(10)}), nil)
	assert.Equal(t, CoordsPairMessage, fe["lat"])
}

func TestValidate_CoordinateBounds(t *testing.T) {
	v := New(point{})

	fe := Translate(v.Validate(point{Name: "A", Lat: null.Float64From(91), Lng: null.Float64From(-181)}), nil)

	assert.Equal(t, "La latitud debe estar entre -90 y 90", fe["lat"])
	assert.Equal(t, "La longitud debe estar entre -180 y 180", fe["lng"])
}

func TestValidate_PairMessageWinsOverRequired(t *testing.T) {
	v := New(requiredPoint{})

	fe := Translate(v.Validate(requiredPoint{Lat: null.Float64From(1)}), nil)

	assert.Equal(t, CoordsPairMessage, fe["lng"])
}

func TestTranslate_PairMessageKeepsCoercionError(t *testing.T) {
	v := New(requiredPoint{})

	fe := Translate(v.Validate(requiredPoint{Lat: null.Float64From(1)}), FieldErrors{"lng": "Debe ser un número"})

	assert.Equal(t, "Debe ser un número", fe["lng"])
}

func TestTranslate_FieldNamesUseJSONTags(t *testing.T) {
	v := New()

	fe := Translate(v.Validate(point{Name: "nombre demasiado largo"}), FieldErrors{"codigo": "ya existe"})

	assert.Equal(t, "Máximo 10 caracteres", fe["nombre"])
	assert.Equal(t, "ya existe", fe["codigo"])
}

func TestValidate_NotBlank(t *testing.T) {
	type record struct {
		NIA string `json:"nia" validate:"required,not_blank"`
	}
	v := New()

	assert.NoError(t, v.Validate(record{NIA: "NIA-1"}))

	err := v.Validate(record{NIA: "   "})
	require.Error(t, err)
	fe := Translate(err, nil)
	assert.Equal(t, "Este campo es obligatorio", fe["nia"])
}
