package words

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
)

// MaxPoints is the largest coordinate set a word may hold.
const MaxPoints = 10000

// Point is an (x, y) position in image pixel space, serialized as [x, y].
type Point struct {
	X float64
	Y float64
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("point must be [x, y]: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("point must have 2 values, got %d", len(pair))
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

func (p Point) distance(q Point) float64 {
	return math.Abs(p.X-q.X) + math.Abs(p.Y-q.Y)
}

// Coordinates is an ordered path of points stored as a JSONB array of pairs.
// A nil set means the word has no coordinates.
type Coordinates []Point

// Validate checks the size bounds and that every value is finite and non-negative.
func (c Coordinates) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: coordinates must contain at least one point", ErrInvalid)
	}
	if len(c) > MaxPoints {
		return fmt.Errorf("%w: coordinates exceed %d points", ErrInvalid, MaxPoints)
	}
	for i, p := range c {
		if !valid(p.X) || !valid(p.Y) {
			return fmt.Errorf("%w: point %d must be finite and non-negative", ErrInvalid, i)
		}
	}
	return nil
}

func valid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Value implements driver.Valuer.
func (c Coordinates) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner.
func (c *Coordinates) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*c = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan coordinates: unsupported type %T", src)
	}

	var out Coordinates
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("scan coordinates: %w", err)
	}
	*c = out
	return nil
}

// OrderStrokes joins pen strokes into a single path. Starting from the first
// non-empty stroke, it repeatedly appends the unused stroke whose start or end
// lies nearest (Manhattan distance) to the current path end, reversing the
// stroke when its end is strictly nearer. Ties keep the earlier stroke.
func OrderStrokes(strokes []Coordinates) Coordinates {
	pending := make([]Coordinates, 0, len(strokes))
	for _, s := range strokes {
		if len(s) > 0 {
			pending = append(pending, s)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	path := make(Coordinates, 0, totalPoints(pending))
	path = append(path, pending[0]...)
	pending = pending[1:]

	for len(pending) > 0 {
		end := path[len(path)-1]

		best := 0
		bestDist := math.Inf(1)
		reverse := false

		for i, s := range pending {
			toStart := end.distance(s[0])
			toEnd := end.distance(s[len(s)-1])

			if toStart < bestDist {
				best, bestDist, reverse = i, toStart, false
			}
			if toEnd < bestDist {
				best, bestDist, reverse = i, toEnd, true
			}
		}

		next := pending[best]
		if reverse {
			for i := len(next) - 1; i >= 0; i-- {
				path = append(path, next[i])
			}
		} else {
			path = append(path, next...)
		}

		pending = append(pending[:best], pending[best+1:]...)
	}

	return path
}

func totalPoints(strokes []Coordinates) int {
	n := 0
	for _, s := range strokes {
		n += len(s)
	}
	return n
}
