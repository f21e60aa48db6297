package unique

import (
	"strconv"

	"github.com/m4gshm/gollections/collection/mutable"
)

func NewNamesWith(opts ...func(*Names)) *Names {
	u := &Names{calc: increment(1)}
	for _, o := range opts {
		o(u)
	}
	return u
}

// PreInit reserves the names.
func PreInit(names ...string) func(*Names) {
	return func(un *Names) {
		for _, name := range names {
			un.Add(name)
		}
	}
}

// DistinctBySuffix resolves name conflicts by appending the suffix.
func DistinctBySuffix(suffix string) func(*Names) {
	return func(un *Names) {
		un.calc = addSuffix(suffix)
	}
}

// Names produces identifiers that are unique within one scope of generated code.
type Names struct {
	uniques *mutable.Set[string]
	calc    func(u *Names, name string) string
}

func (u *Names) Get(name string) string {
	if u != nil {
		if u.uniques == nil {
			u.uniques = mutable.NewSet[string]()
		}
		name = u.calc(u, name)
	}
	return name
}

func (u *Names) Add(name string) {
	u.Get(name)
}

func increment(first int) func(u *Names, name string) string {
	return func(u *Names, name string) string {
		candidate := name
		for i := first; !u.uniques.AddNew(candidate); i++ {
			candidate = name + strconv.Itoa(i)
		}
		return candidate
	}
}

func addSuffix(suffix string) func(u *Names, name string) string {
	return func(u *Names, name string) string {
		candidate := name
		for !u.uniques.AddNew(candidate) {
			candidate += suffix
		}
		return candidate
	}
}
