package widget

// FocusRing cycles through widget ids. The zero value is an empty ring.
type FocusRing struct {
	ids []string
	cur int
}

func NewFocusRing(ids ...string) FocusRing {
	return FocusRing{ids: ids}
}

func (f FocusRing) Current() string {
	if len(f.ids) == 0 {
		return ""
	}
	return f.ids[f.cur]
}

func (f FocusRing) Is(id string) bool {
	return len(f.ids) > 0 && f.ids[f.cur] == id
}

func (f *FocusRing) Next() {
	if len(f.ids) > 0 {
		f.cur = (f.cur + 1) % len(f.ids)
	}
}

func (f *FocusRing) Prev() {
	if len(f.ids) > 0 {
		f.cur = (f.cur - 1 + len(f.ids)) % len(f.ids)
	}
}

// Set moves focus to id and reports whether id is in the ring.
func (f *FocusRing) Set(id string) bool {
	for i, v := range f.ids {
		if v == id {
			f.cur = i
			return true
		}
	}
	return false
}
