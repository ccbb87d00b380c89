package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"seichi.click/gamedata-translator/internal/model"
)

// ContentType is the content type of the Prometheus text exposition format
// the statistics are rendered in.
const ContentType = "text/plain; version=0.0.4; charset=utf-8"

const (
	metricFamily = "seichi_player_statistics"

	header = "# HELP " + metricFamily + " Cumulative statistics of every player known to the game data server\n" +
		"# TYPE " + metricFamily + " gauge\n"

	// perPlayerSizeHint approximates the rendered size of one player's four
	// sample lines. Only used to pre-size the output buffer.
	perPlayerSizeHint = 4 * (len(metricFamily) + len(`{uuid="`) + 36 + len(`",statistics_type="`) + 12 + len(`"} `) + 20 + 1)
)

// Prometheus renders a statistics set in the Prometheus text exposition
// format: a single gauge family with one sample per player and statistic,
// labelled by uuid and statistics_type.
type Prometheus struct{}

func NewPrometheus() *Prometheus {
	return &Prometheus{}
}

// Present renders set into a response body. Output is deterministic for a
// given set: players appear in set order, and each player renders its four
// statistics in a fixed order.
func (p *Prometheus) Present(set *model.StatisticsSet) (string, error) {
	var b strings.Builder
	b.Grow(len(header) + set.Len()*perPlayerSizeHint)

	if err := p.Render(&b, set); err != nil {
		return "", err
	}

	return b.String(), nil
}

// Render writes the exposition of set to w.
func (p *Prometheus) Render(w io.Writer, set *model.StatisticsSet) error {
	if _, err := io.WriteString(w, header); err != nil {
		return errors.Wrap(err, "presenter: writing header")
	}

	var err error
	set.Each(func(uuid model.PlayerUUID, stats *model.PlayerStatistics) {
		if err != nil {
			return
		}
		err = renderPlayer(w, uuid, stats)
	})
	return err
}

func renderPlayer(w io.Writer, uuid model.PlayerUUID, stats *model.PlayerStatistics) error {
	samples := [...]struct {
		kind  string
		value uint64
	}{
		{"break_count", stats.BreakCount},
		{"build_count", stats.BuildCount},
		{"play_ticks", stats.PlayTicks},
		{"vote_count", stats.VoteCount},
	}

	for _, sample := range samples {
		_, err := fmt.Fprintf(w, "%s{uuid=\"%s\",statistics_type=\"%s\"} %d\n",
			metricFamily, uuid.String(), sample.kind, sample.value)
		if err != nil {
			return errors.Wrapf(err, "presenter: writing sample for %s", uuid.String())
		}
	}

	return nil
}
