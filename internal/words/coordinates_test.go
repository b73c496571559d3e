package words_test

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/JaimeStill/wordmap/internal/words"
)

func pts(pairs ...float64) words.Coordinates {
	c := make(words.Coordinates, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		c = append(c, words.Point{X: pairs[i], Y: pairs[i+1]})
	}
	return c
}

func TestCoordinates_JSON(t *testing.T) {
	data, err := json.Marshal(pts(1, 2, 3.5, 4))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "[[1,2],[3.5,4]]" {
		t.Errorf("Marshal() = %s", data)
	}

	var got words.Coordinates
	if err := json.Unmarshal([]byte("[[10,20],[30,40]]"), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !reflect.DeepEqual(got, pts(10, 20, 30, 40)) {
		t.Errorf("Unmarshal() = %+v", got)
	}
}

func TestPoint_UnmarshalJSON_Invalid(t *testing.T) {
	for _, input := range []string{`[1]`, `[1,2,3]`, `{"x":1,"y":2}`, `["a","b"]`} {
		var p words.Point
		if err := json.Unmarshal([]byte(input), &p); err == nil {
			t.Errorf("Unmarshal(%s) expected error", input)
		}
	}
}

func TestCoordinates_NilIsNull(t *testing.T) {
	w := words.WordCoordinates{}
	data, _ := json.Marshal(w)

	var decoded map[string]any
	json.Unmarshal(data, &decoded)
	if decoded["coordinates"] != nil {
		t.Errorf("coordinates = %v, want null", decoded["coordinates"])
	}
}

func TestCoordinates_Validate(t *testing.T) {
	tooMany := make(words.Coordinates, words.MaxPoints+1)

	tests := []struct {
		name    string
		coords  words.Coordinates
		wantErr bool
	}{
		{"single point", pts(0, 0), false},
		{"at limit", make(words.Coordinates, words.MaxPoints), false},
		{"empty", words.Coordinates{}, true},
		{"nil", nil, true},
		{"too many", tooMany, true},
		{"negative", pts(1, -1), true},
		{"nan", words.Coordinates{{X: math.NaN(), Y: 1}}, true},
		{"inf", words.Coordinates{{X: 1, Y: math.Inf(1)}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coords.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, words.ErrInvalid) {
				t.Errorf("error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestCoordinates_ValueScan(t *testing.T) {
	coords := pts(1, 2, 3, 4)

	v, err := coords.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	for _, src := range []any{v, string(v.([]byte))} {
		var got words.Coordinates
		if err := got.Scan(src); err != nil {
			t.Fatalf("Scan(%T) error = %v", src, err)
		}
		if !reflect.DeepEqual(got, coords) {
			t.Errorf("Scan(%T) = %+v", src, got)
		}
	}

	var null words.Coordinates = pts(9, 9)
	if err := null.Scan(nil); err != nil || null != nil {
		t.Errorf("Scan(nil) = %+v, %v", null, err)
	}

	if v, _ := words.Coordinates(nil).Value(); v != nil {
		t.Errorf("nil Value() = %v, want nil", v)
	}

	var bad words.Coordinates
	if err := bad.Scan(42); err == nil {
		t.Error("Scan(int) expected error")
	}
}

func TestOrderStrokes(t *testing.T) {
	tests := []struct {
		name    string
		strokes []words.Coordinates
		want    words.Coordinates
	}{
		{
			"no strokes",
			nil,
			nil,
		},
		{
			"single stroke unchanged",
			[]words.Coordinates{pts(0, 0, 1, 1)},
			pts(0, 0, 1, 1),
		},
		{
			"already ordered",
			[]words.Coordinates{pts(0, 0, 1, 0), pts(2, 0, 3, 0)},
			pts(0, 0, 1, 0, 2, 0, 3, 0),
		},
		{
			"reversed when end is nearer",
			[]words.Coordinates{pts(0, 0, 1, 0), pts(5, 0, 2, 0)},
			pts(0, 0, 1, 0, 2, 0, 5, 0),
		},
		{
			"nearest chosen over list order",
			[]words.Coordinates{pts(0, 0, 1, 0), pts(10, 0, 11, 0), pts(2, 0, 3, 0)},
			pts(0, 0, 1, 0, 2, 0, 3, 0, 10, 0, 11, 0),
		},
		{
			"empty strokes skipped",
			[]words.Coordinates{{}, pts(0, 0, 1, 0), {}, pts(2, 0)},
			pts(0, 0, 1, 0, 2, 0),
		},
		{
			"tie keeps earlier stroke",
			[]words.Coordinates{pts(0, 0), pts(1, 0, 9, 9), pts(0, 1, 8, 8)},
			pts(0, 0, 1, 0, 9, 9, 8, 8, 0, 1),
		},
		{
			"tie between ends keeps forward direction",
			[]words.Coordinates{pts(0, 0), pts(1, 0, 0, 1)},
			pts(0, 0, 1, 0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := words.OrderStrokes(tt.strokes)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("OrderStrokes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrderStrokes_DoesNotMutateInput(t *testing.T) {
	second := pts(5, 0, 2, 0)
	words.OrderStrokes([]words.Coordinates{pts(0, 0, 1, 0), second})

	if !reflect.DeepEqual(second, pts(5, 0, 2, 0)) {
		t.Errorf("input stroke mutated: %v", second)
	}
}
