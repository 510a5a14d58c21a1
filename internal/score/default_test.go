package score

import (
	"path/filepath"
	"testing"
	"time"

	"git.lost.host/meutraa/caeli/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad(t *testing.T) {
	s := DefaultScorer{}
	require.NoError(t, s.Init(filepath.Join(t.TempDir(), "scores.db")))
	defer s.Deinit()

	chart := game.DemoChart()
	other := &game.Chart{Notes: []game.TapNote{{Time: time.Second, Lane: 1}}}

	inputs := []Input{{Lane: 0, Time: 2 * time.Second, Matched: true}, {Lane: 4, Time: 3 * time.Second}}
	require.NoError(t, s.Save(chart, inputs, 1.0))
	require.NoError(t, s.Save(chart, inputs[:1], 1.5))

	histories, err := s.Load(chart)
	require.NoError(t, err)
	require.Len(t, histories, 2)
	assert.Equal(t, inputs, histories[0].Inputs)
	assert.Equal(t, 1.5, histories[1].Rate)
	assert.Equal(t, hashChart(chart), histories[0].Sum)
	assert.WithinDuration(t, time.Now(), histories[0].PlayedAt, time.Minute)

	histories, err = s.Load(other)
	require.NoError(t, err)
	assert.Empty(t, histories)
}

func TestNotOpen(t *testing.T) {
	s := DefaultScorer{}
	assert.ErrorIs(t, s.Save(game.DemoChart(), nil, 1), ErrNotOpen)
	_, err := s.Load(game.DemoChart())
	assert.ErrorIs(t, err, ErrNotOpen)
	s.Deinit()
}

func TestHashChartDependsOnNotes(t *testing.T) {
	a := &game.Chart{Notes: []game.TapNote{{Time: time.Second, Lane: 1}}}
	b := &game.Chart{Notes: []game.TapNote{{Time: time.Second, Lane: 2}}}
	assert.NotEqual(t, hashChart(a), hashChart(b))
	assert.Equal(t, hashChart(a), hashChart(&game.Chart{Notes: []game.TapNote{{Time: time.Second, Lane: 1, Size: 2}}}))
}
