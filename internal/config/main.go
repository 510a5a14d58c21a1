package config

import (
	"errors"
	"fmt"
	"unicode"

	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("caeli", "Lane rhythm game")

	Directory           = app.Arg("directory", "Song/chart directory, the demo chart is played without one").ExistingDir()
	Difficulty          = app.Flag("difficulty", "Chart index within the song").Default("0").Short('D').Int()
	Lanes               = app.Flag("lanes", "Number of lanes").Default("10").Short('l').Int()
	keys                = app.Flag("keys", "Keys for the lanes, left to right").Default("azertyuiop").Short('k').String()
	Tolerance           = app.Flag("tolerance", "Note matching tolerance").Default("100ms").Short('t').Duration()
	Match               = app.Flag("match", "Matching mode, bucket or window").Default("bucket").Enum("bucket", "window")
	Rate                = app.Flag("rate", "Playback speed").Default("1.0").Short('r').Float64()
	Offset              = app.Flag("offset", "Global offset").Default("0ms").Short('o').Duration()
	Delay               = app.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	FPS                 = app.Flag("fps", "Frame rate cap").Default("60").Float64()
	Width               = app.Flag("width", "Window width").Default("800").Int32()
	Height              = app.Flag("height", "Window height").Default("600").Int32()
	Scale               = app.Flag("scale", "Pixels per world unit").Default("64").Float32()
	BarOffsetFromBottom = app.Flag("bar-offset", "Pixels between the hit bar and the bottom edge").Default("96").Int32()
	TapSound            = app.Flag("tap", "Sound file played on a hit, a click is synthesised without one").ExistingFile()
	Volume              = app.Flag("volume", "Music gain, 0 is unchanged").Default("0").Float64()
	Database            = app.Flag("db", "Score history database").Default("scores.db").String()
)

var (
	ErrNotAColumn  = errors.New("key is not bound to a column")
	ErrKeyNotASCII = errors.New("keys must be printable ASCII")
)

// Parse reads the command line. It has to be called before any flag is read.
func Parse(args []string) error {
	app.Version("0.3.0")
	if _, err := app.Parse(args); nil != err {
		return err
	}
	if *Lanes <= 0 {
		return fmt.Errorf("lane count must be positive, got %d", *Lanes)
	}
	for _, r := range Keys() {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			return fmt.Errorf("%w: %q", ErrKeyNotASCII, r)
		}
	}
	if len(Keys()) < *Lanes {
		return fmt.Errorf("%d keys bound for %d lanes", len(Keys()), *Lanes)
	}
	if *Rate <= 0 {
		return fmt.Errorf("rate must be positive, got %v", *Rate)
	}
	return nil
}

func Keys() []rune {
	return []rune(*keys)
}

// KeyCode maps a key rune to the code used by raylib and GLFW, which agree
// on ASCII letters and digits.
func KeyCode(r rune) int32 {
	return int32(unicode.ToUpper(r))
}

func KeyCodes() []int32 {
	ks := Keys()
	codes := make([]int32, len(ks))
	for i, r := range ks {
		codes[i] = KeyCode(r)
	}
	return codes
}

func KeyColumn(code int32) (int, error) {
	for i, c := range KeyCodes() {
		if code == c {
			return i, nil
		}
	}
	return -1, ErrNotAColumn
}
