package qcalc

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds general data for parsing.
type parsectx struct {
	// defs is the table used to resolve unit and constant names.
	defs *Definitions
	// style is the display style attached to parsed queries.
	style Style
	// styled indicates that an option set the style.
	styled bool
}

type (
	defsopt  struct{ defs *Definitions }
	styleopt Style
)

// UseDefinitions sets the table of units and constants used for parsing. The
// default is Builtin().
func UseDefinitions(defs *Definitions) ParseOption {
	return defsopt{defs}
}

func (o defsopt) parseOption(p parsectx) parsectx {
	p.defs = o.defs
	return p
}

// WithStyle sets the default display style for parsed queries. Query clauses
// override it. The default is DefaultStyle.
func WithStyle(s Style) ParseOption {
	return styleopt(s)
}

func (o styleopt) parseOption(p parsectx) parsectx {
	p.style = Style(o)
	p.styled = true
	return p
}

// newparsectx applies options in order over the defaults.
func newparsectx(opts []ParseOption) parsectx {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.defs == nil {
		p.defs = Builtin()
	}
	if !p.styled {
		p.style = DefaultStyle
	}
	return p
}
