package mcp

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/ironfell/chronicle/internal/services/chronicle/domain/chronicle"
	"github.com/ironfell/chronicle/internal/services/chronicle/domain/recorder"
	"github.com/ironfell/chronicle/internal/services/chronicle/i18n"
)

// NameTable is a per-character artifact name cache. Artifact identity is
// owned by the game's registry; clients send names alongside artifact tool
// calls and the table replays them when the chronicle formats entry text.
type NameTable map[int]string

// ArtifactName implements the chronicle's artifact namer collaborator.
func (n NameTable) ArtifactName(artifactID int) string {
	if name, ok := n[artifactID]; ok {
		return name
	}
	return fmt.Sprintf("artifact #%d", artifactID)
}

type session struct {
	chron *chronicle.Chronicle
	names NameTable
}

// Registry maps character ids to live chronicles.
type Registry struct {
	mu       sync.Mutex
	locale   language.Tag
	sessions map[string]*session
}

// NewRegistry creates an empty registry phrasing entries in the given locale.
func NewRegistry(locale language.Tag) *Registry {
	return &Registry{
		locale:   locale,
		sessions: make(map[string]*session),
	}
}

// Start creates the chronicle for a character and sets its actor context.
// It reports false when the chronicle already existed; the actor context is
// updated either way.
func (r *Registry) Start(characterID string, actor recorder.Actor) (bool, error) {
	characterID = strings.TrimSpace(characterID)
	if characterID == "" {
		return false, fmt.Errorf("character id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.sessions[characterID]; ok {
		existing.chron.SetActor(actor)
		return false, nil
	}

	names := NameTable{}
	chron := chronicle.New(names, i18n.NewFormatter(r.locale))
	chron.SetActor(actor)
	r.sessions[characterID] = &session{chron: chron, names: names}
	return true, nil
}

// With runs fn against the character's chronicle and name table while
// holding the registry lock, serializing all access to the single-actor
// domain core.
func (r *Registry) With(characterID string, fn func(*chronicle.Chronicle, NameTable) error) error {
	characterID = strings.TrimSpace(characterID)
	if characterID == "" {
		return fmt.Errorf("character id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[characterID]
	if !ok {
		return fmt.Errorf("no chronicle for character %q: call chronicle_start first", characterID)
	}
	return fn(sess.chron, sess.names)
}
