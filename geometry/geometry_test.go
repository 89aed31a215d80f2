package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotate(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		rot  Rotation
		n    int
		want Direction
	}{
		{"north right", North, Right, 1, East},
		{"west right wraps", West, Right, 1, North},
		{"north left wraps", North, Left, 1, West},
		{"east left", East, Left, 1, North},
		{"reverse", South, Left, 2, North},
		{"full turn", East, Right, 4, East},
		{"many turns left", North, Left, 7, East},
		{"negative count", North, Right, -1, West},
		{"negative count left", North, Left, -3, West},
		{"zero", South, Left, 0, South},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rotate(tt.dir, tt.rot, tt.n))
		})
	}
}

func TestRotateRoundTrip(t *testing.T) {
	for _, dir := range Directions {
		for n := -9; n <= 9; n++ {
			left := Rotate(dir, Left, n)
			assert.True(t, left.Valid(), "rotate(%v, Left, %d) = %d", dir, n, left)
			assert.Equal(t, dir, Rotate(left, Right, n))
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, North, South.Opposite())
	assert.Equal(t, East, West.Opposite())
}

func TestPointTranslate(t *testing.T) {
	p := Point{X: 3, Y: 3}

	assert.Equal(t, Point{X: 3, Y: 2}, p.Translate(North))
	assert.Equal(t, Point{X: 4, Y: 3}, p.Translate(East))
	assert.Equal(t, Point{X: 3, Y: 4}, p.Translate(South))
	assert.Equal(t, Point{X: 2, Y: 3}, p.Translate(West))
	assert.Equal(t, p, p.Translate(Direction(9)))

	for _, dir := range Directions {
		assert.True(t, p.Translate(dir).Translate(dir.Opposite()).Equals(p))
	}
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "(1,2)", Point{X: 1, Y: 2}.String())
	assert.Equal(t, "West", West.String())
	assert.Equal(t, "Direction(7)", Direction(7).String())
	assert.Equal(t, "Left", Left.String())
}
