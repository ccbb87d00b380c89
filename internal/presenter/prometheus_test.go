package presenter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seichi.click/gamedata-translator/internal/model"
)

func mustUUID(t *testing.T, raw string) model.PlayerUUID {
	t.Helper()

	uuid, err := model.ParsePlayerUUID(raw)
	require.NoError(t, err)
	return uuid
}

func TestPresentSinglePlayer(t *testing.T) {
	set := model.NewStatisticsSet(1)
	set.Stats(mustUUID(t, "11111111-1111-1111-1111-111111111111")).BreakCount = 5

	body, err := NewPrometheus().Present(set)
	require.NoError(t, err)

	expect := strings.Join([]string{
		`# HELP seichi_player_statistics Cumulative statistics of every player known to the game data server`,
		`# TYPE seichi_player_statistics gauge`,
		`seichi_player_statistics{uuid="11111111-1111-1111-1111-111111111111",statistics_type="break_count"} 5`,
		`seichi_player_statistics{uuid="11111111-1111-1111-1111-111111111111",statistics_type="build_count"} 0`,
		`seichi_player_statistics{uuid="11111111-1111-1111-1111-111111111111",statistics_type="play_ticks"} 0`,
		`seichi_player_statistics{uuid="11111111-1111-1111-1111-111111111111",statistics_type="vote_count"} 0`,
	}, "\n") + "\n"

	assert.Equal(t, expect, body)
}

func TestPresentEmptySetRendersHeaderOnly(t *testing.T) {
	body, err := NewPrometheus().Present(model.NewStatisticsSet(0))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "# HELP seichi_player_statistics "))
	assert.Equal(t, "# TYPE seichi_player_statistics gauge", lines[1])
}

func TestPresentGrammarAndLineCount(t *testing.T) {
	set := model.NewStatisticsSet(3)
	alice := set.Stats(mustUUID(t, "11111111-1111-1111-1111-111111111111"))
	alice.BreakCount = 100
	alice.BuildCount = 50
	bob := set.Stats(mustUUID(t, "22222222-2222-2222-2222-222222222222"))
	bob.PlayTicks = 1 << 40
	set.Stats(mustUUID(t, "33333333-3333-3333-3333-333333333333")).VoteCount = 3

	body, err := NewPrometheus().Present(set)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(body, "\n"))

	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	require.Len(t, lines, 2+4*set.Len())

	sampleRe := regexp.MustCompile(`^seichi_player_statistics\{uuid="[^"]{36}",statistics_type="(break_count|build_count|play_ticks|vote_count)"\} \d+$`)
	samples := lo.Filter(lines, func(line string, _ int) bool {
		return !strings.HasPrefix(line, "#")
	})
	require.Len(t, samples, 4*set.Len())
	for _, line := range samples {
		assert.Regexpf(t, sampleRe, line, "malformed sample line %q", line)
	}

	// each player renders its four statistics in a fixed order
	kinds := lo.Map(samples[:4], func(line string, _ int) string {
		return sampleRe.FindStringSubmatch(line)[1]
	})
	assert.Equal(t, []string{"break_count", "build_count", "play_ticks", "vote_count"}, kinds)

	assert.Contains(t, body, `seichi_player_statistics{uuid="22222222-2222-2222-2222-222222222222",statistics_type="play_ticks"} 1099511627776`)
}

func TestPresentIsDeterministic(t *testing.T) {
	set := model.NewStatisticsSet(2)
	set.Stats(mustUUID(t, "22222222-2222-2222-2222-222222222222")).BuildCount = 2
	set.Stats(mustUUID(t, "11111111-1111-1111-1111-111111111111")).BreakCount = 1

	p := NewPrometheus()

	first, err := p.Present(set)
	require.NoError(t, err)
	second, err := p.Present(set)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// players render in set order, not lexicographic order
	assert.Less(t,
		strings.Index(first, `uuid="22222222`),
		strings.Index(first, `uuid="11111111`),
	)
}

type failingWriter struct {
	allow int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.allow <= 0 {
		return 0, errors.New("writer is full")
	}
	w.allow--
	return len(p), nil
}

func TestRenderSurfacesWriterErrors(t *testing.T) {
	set := model.NewStatisticsSet(1)
	set.Stats(mustUUID(t, "11111111-1111-1111-1111-111111111111")).BreakCount = 5

	p := NewPrometheus()

	err := p.Render(&failingWriter{allow: 0}, set)
	assert.ErrorContains(t, err, "writer is full")

	err = p.Render(&failingWriter{allow: 2}, set)
	assert.ErrorContains(t, err, "writer is full")
}
