// Package images builds the ordered photo fallback chain for a player. The
// chain always ends in a generated avatar, so consumption terminates; trying
// the references is the caller's job, modeled as a (chain, failures) cursor so
// no I/O happens here.
package images

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/Aadhavm10/PremScout/internal/models"
)

const avatarURL = "https://ui-avatars.com/api/?name=%s&background=%s&color=%s&size=110&bold=true"

// Fixed colour pair (background, foreground) per position, from the PL brand
// palette. The unknown-position pair exists so Placeholder is total; records
// with unknown positions never survive normalization.
var positionColors = map[models.Position][2]string{
	models.PositionKeeper:     {"ebff00", "37003c"},
	models.PositionDefender:   {"00ff87", "37003c"},
	models.PositionMidfielder: {"05f0ff", "37003c"},
	models.PositionForward:    {"e90052", "ffffff"},
}

var unknownColors = [2]string{"37003c", "ffffff"}

// Chain returns the full fallback chain for a player: the record's candidate
// references in order, then the guaranteed-resolvable placeholder.
func Chain(p models.Player) []string {
	chain := make([]string, 0, len(p.ImageSources)+1)
	chain = append(chain, p.ImageSources...)
	chain = append(chain, Placeholder(p.Name, p.Position))
	return chain
}

// Placeholder derives the terminal avatar reference from a player's name and
// position alone. Same inputs always yield the same reference.
func Placeholder(name string, position models.Position) string {
	colors, ok := positionColors[position]
	if !ok {
		colors = unknownColors
	}
	return fmt.Sprintf(avatarURL, url.QueryEscape(Initials(name)), colors[0], colors[1])
}

// Initials is the 1-2 character token shown on the avatar: the first letters
// of the first and last name parts, uppercased.
func Initials(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "?"
	}
	first := firstLetter(parts[0])
	if len(parts) == 1 {
		return first
	}
	return first + firstLetter(parts[len(parts)-1])
}

func firstLetter(s string) string {
	for _, r := range s {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// Next is the consumption cursor: given the chain and the number of failed
// attempts so far, it returns the next reference to try. ok is false only
// when the cursor has run off the chain, which a well-behaved caller never
// reaches because the final entry always resolves.
func Next(chain []string, failures int) (string, bool) {
	if failures < 0 || failures >= len(chain) {
		return "", false
	}
	return chain[failures], true
}
