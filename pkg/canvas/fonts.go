package canvas

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce sync.Once
	sansSrc  *text.GoTextFaceSource
	boldSrc  *text.GoTextFaceSource
)

// fontSource returns the lazily parsed embedded Go font. The parse only
// fails on a corrupt embed, so failure panics.
func fontSource(bold bool) *text.GoTextFaceSource {
	fontOnce.Do(func() {
		var err error
		sansSrc, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(fmt.Sprintf("canvas: load embedded font: %v", err))
		}
		boldSrc, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			panic(fmt.Sprintf("canvas: load embedded bold font: %v", err))
		}
	})
	if bold {
		return boldSrc
	}
	return sansSrc
}
