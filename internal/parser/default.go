package parser

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/caeli/internal/game"
)

type DefaultParser struct{}

type bpm struct {
	StartingBeat float64
	Value        float64
}

func (p *DefaultParser) getSecondsPerNote(rates []bpm, currentBeat float64, bpn float64) float64 {
	sel := float64(0.0)
	for _, bpm := range rates {
		if currentBeat >= bpm.StartingBeat {
			sel = bpm.Value
		} else {
			break
		}
	}
	secondsPerBeat := 60.0 / sel
	return bpn * secondsPerBeat
}

// 0 – No note
// 1 – Normal note
// 2 – Hold head
// 3 – Hold/Roll tail
// 4 – Roll head
// M – Mine (or other negative note)
// K – Automatic keysound
// L – Lift note
// F – Fake note

// Heads of holds and rolls are played as taps.
func (p *DefaultParser) isTap(ch byte) bool {
	return ch == '1' || ch == '2' || ch == '4'
}

func (p *DefaultParser) Parse(file string) ([]*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, err
	}
	charts, err := p.ParseString(string(data))
	if nil != err {
		return nil, fmt.Errorf("unable to parse %v: %w", file, err)
	}
	return charts, nil
}

func parseBPMs(mdl string) ([]bpm, error) {
	bpms := []bpm{}
	mdl = strings.ReplaceAll(mdl, "\n", "")
	for _, entry := range strings.Split(strings.TrimSuffix(mdl, ";"), ",") {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		as := strings.Split(entry, "=")
		if len(as) != 2 {
			return nil, fmt.Errorf("malformed bpm %q", entry)
		}
		sb, err := strconv.ParseFloat(strings.TrimSpace(as[0]), 64)
		if nil != err {
			return nil, err
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(as[1]), 64)
		if nil != err {
			return nil, err
		}
		bpms = append(bpms, bpm{StartingBeat: sb, Value: value})
	}
	return bpms, nil
}

func (p *DefaultParser) ParseString(data string) ([]*game.Chart, error) {
	str := strings.ReplaceAll(data, "\r", "")
	sections := strings.Split(str, "#NOTES:")
	meta := sections[0]
	difficulties := []game.Difficulty{}
	for _, section := range sections[1:] {
		lines := strings.SplitN(section, "\n", 7)
		if len(lines) < 7 {
			continue
		}
		chartType := strings.TrimSpace(lines[1])
		chartType = strings.TrimSuffix(chartType, ":")
		nKeys, ok := game.NKeyMap[chartType]
		if !ok {
			continue
		}
		difficulties = append(difficulties, game.Difficulty{
			Name:    strings.TrimSuffix(strings.TrimSpace(lines[3]), ":"),
			Msd:     strings.TrimSuffix(strings.TrimSpace(lines[4]), ":"),
			Section: lines[6],
			NKeys:   nKeys,
		})
	}

	offset := 0.0
	bpms := []bpm{}

	for _, mdl := range strings.Split(meta, "\n#") {
		mdl = strings.TrimPrefix(strings.TrimSpace(mdl), "#")
		if strings.HasPrefix(mdl, "OFFSET:") {
			mdl = strings.TrimPrefix(mdl, "OFFSET:")
			mdl = strings.TrimSuffix(mdl, ";")
			offs, err := strconv.ParseFloat(strings.TrimSpace(mdl), 64)
			if nil != err {
				return nil, err
			}
			offset = -offs
		} else if strings.HasPrefix(mdl, "BPMS:") {
			var err error
			bpms, err = parseBPMs(strings.TrimPrefix(mdl, "BPMS:"))
			if nil != err {
				return nil, err
			}
		}
	}
	if len(bpms) == 0 && len(difficulties) > 0 {
		return nil, fmt.Errorf("no #BPMS in chart")
	}

	charts := []*game.Chart{}
	for _, difficulty := range difficulties {
		// Start time of first note
		seconds := offset
		var currentBeat float64 = 0.0

		notes := []game.TapNote{}
		mineCount := 0
		holdCount := 0

		blocks := strings.Split(strings.SplitN(difficulty.Section, ";", 2)[0], "\n,")

		for _, block := range blocks {
			lines := []string{}
			for _, l := range strings.Split(block, "\n") {
				if i := strings.Index(l, "//"); i >= 0 {
					l = l[:i]
				}
				l = strings.TrimSpace(l)
				if len(l) == int(difficulty.NKeys) {
					lines = append(lines, l)
				}
			}
			if len(lines) == 0 {
				continue
			}

			// Beat count is 4 per block
			lineCount := int64(len(lines))
			beatsPerNote := 4.0 / float64(lineCount) // 1/4, 1/8, 1/16, 1/24 etc

			for _, line := range lines {
				secondsPerNote := p.getSecondsPerNote(bpms, currentBeat, beatsPerNote)

				for i, c := range []byte(line) {
					switch {
					case p.isTap(c):
						if c != '1' {
							holdCount++
						}
						notes = append(notes, game.TapNote{
							Time: time.Duration(seconds * float64(time.Second)),
							Lane: i,
							Size: 1,
						})
					case c == 'M':
						mineCount++
					}
				}

				seconds += secondsPerNote
				currentBeat += beatsPerNote
			}
		}

		charts = append(charts, &game.Chart{
			Notes:      notes,
			NoteCount:  int64(len(notes)),
			HoldCount:  int64(holdCount),
			MineCount:  int64(mineCount),
			Difficulty: difficulty,
		})
	}

	return charts, nil
}
