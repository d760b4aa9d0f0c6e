package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Level is the tiered achievement classification of a user
type Level string

const (
	LevelNone     Level = "None"
	LevelBronze   Level = "Bronze"
	LevelSilver   Level = "Silver"
	LevelGold     Level = "Gold"
	LevelPlatinum Level = "Platinum"
)

// Levels lists every level from lowest to highest
var Levels = []Level{LevelNone, LevelBronze, LevelSilver, LevelGold, LevelPlatinum}

// ParseLevel converts a level name in any casing into a Level
func ParseLevel(s string) (Level, error) {
	// Casers are stateful, so one is built per call.
	candidate := Level(cases.Title(language.English).String(strings.TrimSpace(s)))
	for _, l := range Levels {
		if l == candidate {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// String implements fmt.Stringer
func (l Level) String() string {
	return string(l)
}

// LevelResult is the externally visible achievement level of a user
type LevelResult struct {
	UserID int    `json:"userId"`
	Name   string `json:"name"`
	Level  Level  `json:"level"`
}

// NotFoundResult is returned when the requested user does not exist upstream
func NotFoundResult() LevelResult {
	return LevelResult{Level: LevelNone}
}

// Found reports whether the result refers to an existing user
func (r LevelResult) Found() bool {
	return r.UserID > 0
}
