package flaguse

import (
	other "other/loading"

	"github.com/atinyakov/useful-links/internal/loading"
)

func released(f *loading.Flag) {
	defer f.Begin()()

	end := f.Begin()
	end()
}

func dropped(f *loading.Flag) {
	f.Begin()       // want `end function of f\.Begin\(\) is discarded`
	_ = f.Begin()   // want `end function of f\.Begin\(\) is discarded`
	go f.Begin()    // want `end function of f\.Begin\(\) is discarded`
	defer f.Begin() // want `deferred f\.Begin\(\) starts the operation at return`
}

func unrelated(f *other.Flag) {
	f.Begin()
}
