package params

import (
	"flag"
	"fmt"
	"strings"
)

// multiflag collects the values of a repeated flag; the first explicit value drops the defaults.
type multiflag struct {
	name     string
	values   []string
	explicit bool
	used     map[string]struct{}
}

var _ flag.Getter = (*multiflag)(nil)

func (f *multiflag) String() string {
	if f == nil {
		return ""
	}
	return strings.Join(f.values, ",")
}

func (f *multiflag) Set(s string) error {
	if !f.explicit {
		f.explicit = true
		f.values = []string{}
		f.used = map[string]struct{}{}
	}
	if _, ok := f.used[s]; ok {
		return fmt.Errorf("duplicated value '%s' of parameter %s", s, f.name)
	}
	f.values = append(f.values, s)
	f.used[s] = struct{}{}
	return nil
}

func (f *multiflag) Get() interface{} { return f.values }

func MultiVal(flagSet *flag.FlagSet, name string, defValues []string, usage string) *[]string {
	values := &multiflag{name: name, values: append([]string{}, defValues...)}
	flagSet.Var(values, name, usage)
	return &values.values
}
