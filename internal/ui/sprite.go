package ui

import (
	"math/rand"
	"strings"
)

// mirrored pairs swap when art is flipped to face the other way.
var mirrored = strings.NewReplacer(
	"<", ">", ">", "<",
	"{", "}", "}", "{",
	"(", ")", ")", "(",
	"[", "]", "]", "[",
	"/", `\`, `\`, "/",
)

// Reverse mirrors one line of ASCII art.
func Reverse(art string) string {
	r := []rune(art)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return mirrored.Replace(string(r))
}

// Sprite is a fish drawn inside the tank. X and Y are water cells, 0,0 being
// the top left cell under the surface.
type Sprite struct {
	Name    string
	Art     string
	Color   string
	X, Y    int
	Flipped bool
}

// NewSprite places a sprite at random inside a width x height tank.
func NewSprite(name, art, color string, width, height int, rng *rand.Rand) *Sprite {
	s := &Sprite{Name: name, Art: art, Color: color, Flipped: rng.Float64() > 0.5}
	if room := width - s.Width(); room > 0 {
		s.X = rng.Intn(room + 1)
	}
	if height > 0 {
		s.Y = rng.Intn(height)
	}
	return s
}

// Text is the art facing the current direction. Unflipped art faces left.
func (s *Sprite) Text() string {
	if s.Flipped {
		return Reverse(s.Art)
	}
	return s.Art
}

func (s *Sprite) Width() int { return len([]rune(s.Art)) }

// Swim moves every sprite one random step, bouncing off the glass.
func Swim(sprites []*Sprite, width, height int, rng *rand.Rand) {
	for _, s := range sprites {
		r := rng.Float64()
		switch {
		case r < 0.2:
			s.Flipped = !s.Flipped
		case r < 0.3:
			if s.Y > 0 {
				s.Y--
			} else {
				s.Y++
			}
		case r < 0.4:
			if s.Y < height-1 {
				s.Y++
			} else {
				s.Y--
			}
		case r < 0.8:
			if s.Flipped {
				if s.X < width-s.Width() {
					s.X++
				} else {
					s.Flipped = false
				}
			} else {
				if s.X > 0 {
					s.X--
				} else {
					s.Flipped = true
				}
			}
		}
		s.clamp(width, height)
	}
}

// clamp keeps the sprite inside the tank, which matters when art grows or
// the tank shrinks.
func (s *Sprite) clamp(width, height int) {
	if max := width - s.Width(); s.X > max {
		s.X = max
	}
	if s.X < 0 {
		s.X = 0
	}
	if s.Y > height-1 {
		s.Y = height - 1
	}
	if s.Y < 0 {
		s.Y = 0
	}
}
