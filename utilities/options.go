package utilities

// Options apply to every generated sequence utility. A nil field means the
// value was not configured and its default is used. Any supplied value,
// including "" and "0", is used as is.
type Options struct {
	FillMode *string // default ""
	Easing   *string // no default, absent easing produces ""
	Duration *string // default ""
}

// Opt returns pointer to v, handy for filling Options.
func Opt(v string) *string {
	return &v
}

func valueOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func (o Options) fillMode() string {
	return valueOr(o.FillMode, "")
}

func (o Options) easing() string {
	return valueOr(o.Easing, "")
}

func (o Options) duration() string {
	return valueOr(o.Duration, "")
}
