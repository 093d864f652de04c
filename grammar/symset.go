package grammar

type symset map[*Symbol]struct{}

var exists = struct{}{}

func (set symset) add(sym *Symbol) symset {
	if set == nil {
		set = symset{}
	}
	set[sym] = exists
	return set
}

func (set symset) contains(sym *Symbol) bool {
	if set == nil || sym == nil {
		return false
	}
	_, ok := set[sym]
	return ok
}
