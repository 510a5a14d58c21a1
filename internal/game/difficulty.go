package game

type Difficulty struct {
	Name    string
	Msd     string
	Section string
	NKeys   uint8
}

var NKeyMap = map[string]uint8{
	"dance-single": 4,
	"pump-single":  5,
	"dance-solo":   6,
	"dance-double": 8,
	"pump-double":  10,
}
