package loading

type Flag struct {
	holders int
}

func (f *Flag) Begin() func() {
	f.holders++
	return func() { f.holders-- }
}
