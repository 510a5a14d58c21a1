package game

import (
	"errors"
	"fmt"
	"time"

	"git.lost.host/meutraa/caeli/internal/scene"
	"git.lost.host/meutraa/caeli/internal/theme"
)

// Layout of a materialised track, in world units. The detection bar sits at
// y = 0 of the track group, so a note reaches it exactly at its hit time.
const (
	LaneWidth          float32 = 1
	LaneLength         float32 = 6
	NoteHeight         float32 = 0.12
	DetectionBarOffset float32 = 0.5
	DetectionBarHeight float32 = 0.04
)

// TapSound is the sound requested from the audio collaborator on a hit.
const TapSound = "tap"

var (
	ErrLaneOutOfRange = errors.New("lane index out of range")
	ErrNoScene        = errors.New("no scene to build the track in")
)

// Scene is the part of the scene graph a track drives.
type Scene interface {
	AddChild(parent scene.Handle, n scene.Node) (scene.Handle, error)
	SetTranslation(h scene.Handle, x, y, z float32) error
	SetMaterial(h scene.Handle, m scene.Material) error
}

type Audio interface {
	PlaySound(name string) error
}

type Track struct {
	Name    string
	Lanes   []Lane
	Notes   Notes
	Matcher Matcher

	theme theme.Theme

	// Handles returned while materialising, nil until CreateNode.
	group     *scene.Handle
	laneNodes []scene.Handle
	notesNode scene.Handle
	noteNodes []scene.Handle
	barNode   scene.Handle
}

func NewTrack(name string, laneCount int, th theme.Theme) *Track {
	if laneCount < 0 {
		laneCount = 0
	}
	lanes := make([]Lane, laneCount)
	for i := range lanes {
		lanes[i].Name = fmt.Sprintf("%s-lane-%d", name, i)
	}
	return &Track{
		Name:    name,
		Lanes:   lanes,
		Matcher: Bucket{Tolerance: DefaultTolerance},
		theme:   th,
	}
}

func (t *Track) AddNote(at time.Duration, lane int, size float32) {
	t.Notes.Add(TapNote{Time: at, Lane: lane, Size: size})
}

func (t *Track) lane(i int) (*Lane, error) {
	if i < 0 || i >= len(t.Lanes) {
		return nil, fmt.Errorf("%w: %d of %d", ErrLaneOutOfRange, i, len(t.Lanes))
	}
	return &t.Lanes[i], nil
}

func (t *Track) IsActive(i int) (bool, error) {
	l, err := t.lane(i)
	if nil != err {
		return false, err
	}
	return l.Active, nil
}

func (t *Track) materialised(sc Scene) bool {
	return sc != nil && t.group != nil
}

// ActivateLane marks lane i active and reports whether input lands on one of
// its notes. A hit paints the lane with the hit material and plays TapSound.
// An out of range lane is rejected without touching any state.
func (t *Track) ActivateLane(i int, sc Scene, au Audio, input time.Duration) (bool, error) {
	l, err := t.lane(i)
	if nil != err {
		return false, err
	}
	_, matched := t.Notes.Match(i, input, t.Matcher)
	l.Active = true

	if t.materialised(sc) {
		m := t.theme.LaneActive()
		if matched {
			m = t.theme.LaneHit()
		}
		if err := sc.SetMaterial(t.laneNodes[i], m); nil != err {
			return matched, fmt.Errorf("unable to paint lane %d: %w", i, err)
		}
	}
	if matched && au != nil {
		if err := au.PlaySound(TapSound); nil != err {
			return matched, fmt.Errorf("unable to play tap: %w", err)
		}
	}
	return matched, nil
}

func (t *Track) DeactivateLane(i int, sc Scene) error {
	l, err := t.lane(i)
	if nil != err {
		return err
	}
	l.Active = false

	if t.materialised(sc) {
		if err := sc.SetMaterial(t.laneNodes[i], t.theme.LaneIdle()); nil != err {
			return fmt.Errorf("unable to reset lane %d: %w", i, err)
		}
	}
	return nil
}

// Update advances the scroll cursor by dt seconds and slides the notes down.
func (t *Track) Update(dt float32, sc Scene) error {
	t.Notes.Update(dt)
	if !t.materialised(sc) {
		return nil
	}
	var err error
	t.noteNodes, err = t.addNoteNodes(sc, t.notesNode, t.noteNodes)
	if nil != err {
		return err
	}
	return sc.SetTranslation(t.notesNode, 0, -t.Notes.CurrentTime, 0)
}

// CreateNode builds the visual representation of the track under parent once.
// Later calls return the group created by the first. The track only counts as
// materialised once every node exists, a failed call can be retried.
func (t *Track) CreateNode(sc Scene, parent scene.Handle) (scene.Handle, error) {
	if t.group != nil {
		return *t.group, nil
	}
	if sc == nil {
		return -1, ErrNoScene
	}

	group, err := sc.AddChild(parent, scene.Node{Name: t.Name})
	if nil != err {
		return -1, fmt.Errorf("unable to create track node: %w", err)
	}

	laneNodes := make([]scene.Handle, len(t.Lanes))
	for i, l := range t.Lanes {
		laneNodes[i], err = sc.AddChild(group, scene.Node{
			Name:     l.Name,
			Width:    LaneWidth,
			Height:   LaneLength,
			X:        float32(i) * LaneWidth,
			Y:        -DetectionBarOffset,
			Material: t.theme.LaneIdle(),
		})
		if nil != err {
			return -1, fmt.Errorf("unable to create lane node: %w", err)
		}
	}

	notesNode, err := sc.AddChild(group, scene.Node{
		Name: t.Name + "-notes",
		Y:    -t.Notes.CurrentTime,
	})
	if nil != err {
		return -1, fmt.Errorf("unable to create notes node: %w", err)
	}

	noteNodes, err := t.addNoteNodes(sc, notesNode, nil)
	if nil != err {
		return -1, err
	}

	barNode, err := sc.AddChild(group, scene.Node{
		Name:     t.Name + "-detection-bar",
		Width:    float32(len(t.Lanes)) * LaneWidth,
		Height:   DetectionBarHeight,
		Y:        -DetectionBarHeight / 2,
		Material: t.theme.DetectionBar(),
	})
	if nil != err {
		return -1, fmt.Errorf("unable to create detection bar: %w", err)
	}

	t.group = &group
	t.laneNodes = laneNodes
	t.notesNode = notesNode
	t.noteNodes = noteNodes
	t.barNode = barNode
	return group, nil
}

// addNoteNodes creates nodes under parent for the notes past len(nodes) and
// returns nodes extended with them.
func (t *Track) addNoteNodes(sc Scene, parent scene.Handle, nodes []scene.Handle) ([]scene.Handle, error) {
	for _, note := range t.Notes.Notes[len(nodes):] {
		size := note.Size
		if size <= 0 {
			size = 1
		}
		h, err := sc.AddChild(parent, scene.Node{
			Name:     fmt.Sprintf("%s-note-%d", t.Name, len(nodes)),
			Width:    LaneWidth * size,
			Height:   NoteHeight,
			X:        float32(note.Lane) * LaneWidth,
			Y:        float32(note.Time.Seconds()),
			Material: t.theme.Note(note.Lane),
		})
		if nil != err {
			return nodes, fmt.Errorf("unable to create note node: %w", err)
		}
		nodes = append(nodes, h)
	}
	return nodes, nil
}

// LaneNode returns the scene handle of lane i once the track is materialised.
func (t *Track) LaneNode(i int) (scene.Handle, bool) {
	if t.group == nil || i < 0 || i >= len(t.laneNodes) {
		return -1, false
	}
	return t.laneNodes[i], true
}

func (t *Track) NotesNode() (scene.Handle, bool) {
	if t.group == nil {
		return -1, false
	}
	return t.notesNode, true
}
