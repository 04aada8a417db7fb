package event

// Flag identifies one category of life event, or one artifact sub-state.
type Flag uint8

const (
	// FlagNone is the zero flag and never appears in a valid entry.
	FlagNone Flag = iota
	// FlagPlayerBirth records character creation.
	FlagPlayerBirth
	// FlagGameStart records the start of a play session.
	FlagGameStart
	// FlagPlayerDeath records the character dying.
	FlagPlayerDeath
	// FlagPlayerRevive records the character being revived.
	FlagPlayerRevive
	// FlagGainLevel records a character level gain.
	FlagGainLevel
	// FlagSlayUnique records the defeat of a unique monster.
	FlagSlayUnique
	// FlagArtifactUnknown marks an artifact entry whose identity the
	// character has not yet learned.
	FlagArtifactUnknown
	// FlagArtifactKnown marks an artifact entry as identified.
	FlagArtifactKnown
	// FlagArtifactLost marks an artifact entry as lost; the artifact is no
	// longer in play and a later re-find starts a fresh entry.
	FlagArtifactLost
	// FlagUserInput records free-form notes entered by the player.
	FlagUserInput
	// FlagGeneric records catalogued events with no dedicated flag.
	FlagGeneric

	flagCount
)

var flagNames = [flagCount]string{
	FlagNone:            "none",
	FlagPlayerBirth:     "player_birth",
	FlagGameStart:       "game_start",
	FlagPlayerDeath:     "player_death",
	FlagPlayerRevive:    "player_revive",
	FlagGainLevel:       "gain_level",
	FlagSlayUnique:      "slay_unique",
	FlagArtifactUnknown: "artifact_unknown",
	FlagArtifactKnown:   "artifact_known",
	FlagArtifactLost:    "artifact_lost",
	FlagUserInput:       "user_input",
	FlagGeneric:         "generic",
}

// String returns the stable lowercase name of the flag.
func (f Flag) String() string {
	if f >= flagCount {
		return "unknown"
	}
	return flagNames[f]
}

// IsValid reports whether the flag is part of the event-kind universe.
func (f Flag) IsValid() bool {
	return f > FlagNone && f < flagCount
}

// ParseFlag resolves a flag from its stable name. It returns FlagNone and
// false when the name is not part of the universe.
func ParseFlag(name string) (Flag, bool) {
	for f := FlagNone + 1; f < flagCount; f++ {
		if flagNames[f] == name {
			return f, true
		}
	}
	return FlagNone, false
}

// Flags is a fixed-width bitset over the event-kind universe. Multiple flags
// may be set on one entry, e.g. an unidentified artifact destroyed before
// pickup carries both FlagArtifactUnknown and FlagArtifactLost.
//
// Flags is a plain value: assignment copies the whole set.
type Flags uint32

// Of builds a flag set with the given flags turned on.
func Of(flags ...Flag) Flags {
	var set Flags
	for _, f := range flags {
		set.On(f)
	}
	return set
}

// Wipe clears every flag in the set.
func (s *Flags) Wipe() {
	*s = 0
}

// On turns the given flag on.
func (s *Flags) On(f Flag) {
	*s |= f.bit()
}

// Off turns the given flag off.
func (s *Flags) Off(f Flag) {
	*s &^= f.bit()
}

// Has reports whether the given flag is on.
func (s Flags) Has(f Flag) bool {
	return s&f.bit() != 0
}

// Names returns the stable names of every flag turned on, in universe order.
func (s Flags) Names() []string {
	var names []string
	for f := FlagNone + 1; f < flagCount; f++ {
		if s.Has(f) {
			names = append(names, flagNames[f])
		}
	}
	return names
}

func (f Flag) bit() Flags {
	if !f.IsValid() {
		return 0
	}
	return 1 << uint(f)
}
