package style

import (
	"crypto/md5"
	"encoding/hex"
)

// Styles bundles the five variant indices an inhabitant name hashes to.
type Styles struct {
	Roof    int
	Door    int
	Window  int
	Chimney int
	Wall    int
}

// ColorFor maps an inhabitant name to its base color: the first six hex
// digits of the md5 of the name.
func ColorFor(name string) string {
	sum := md5.Sum([]byte(name))
	return "#" + hex.EncodeToString(sum[:])[:6]
}

// StylesFor maps an inhabitant name to its five style indices: the first
// five hex digits of the md5, each taken mod 4.
func StylesFor(name string) Styles {
	sum := md5.Sum([]byte(name))
	digits := hex.EncodeToString(sum[:])
	n := func(i int) int {
		d := digits[i]
		var v int
		switch {
		case d >= '0' && d <= '9':
			v = int(d - '0')
		default:
			v = int(d-'a') + 10
		}
		return v % 4
	}
	return Styles{
		Roof:    n(0),
		Door:    n(1),
		Window:  n(2),
		Chimney: n(3),
		Wall:    n(4),
	}
}
