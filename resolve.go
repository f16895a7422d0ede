package drplot

// Resolver resolves style attributes for drawable components. Each
// attribute walks four precedence tiers, highest first, first match
// wins:
//
//	1. the caller's explicit kwargs for this plot call
//	2. the group cycle value, if the attribute is driven by an
//	   activated visual channel and a group key is present
//	3. the theme's component-bound category value
//	4. the theme's phase-wide base value
//
// Both theme tiers walk the theme parent chain. If no tier produces a
// value resolution fails with MissingDefault; there is no silent
// implicit default.
type Resolver struct {
	components *Components
	cycles     *CycleEngine
	active     map[VisualChannel]bool
}

func NewResolver(cs *Components, ce *CycleEngine) *Resolver {
	return &Resolver{
		components: cs,
		cycles:     ce,
		active:     make(map[VisualChannel]bool),
	}
}

// Activate marks channels as group-driven for the session. The
// component must have declared each channel, otherwise activation
// fails with UnsupportedChannel at configuration time.
func (r *Resolver) Activate(component string, chs ...VisualChannel) error {
	c, err := r.components.Lookup(component)
	if err != nil {
		return err
	}
	for _, ch := range chs {
		if !c.Supports(ch) {
			return &UnsupportedChannelError{Component: component, Channel: ch}
		}
	}
	for _, ch := range chs {
		r.active[ch] = true
	}
	return nil
}

// Active reports whether ch has been activated.
func (r *Resolver) Active(ch VisualChannel) bool {
	return r.active[ch]
}

// Resolve produces the flat attribute map for one component in one
// phase. Every requested attribute must be part of the component's
// declared schema for the phase (or on the reserved allow-list);
// anything else is a configuration error, not a dynamic lookup.
//
// gk may be nil for ungrouped draws, in which case the cycle tier is
// skipped.
func (r *Resolver) Resolve(component string, ph Phase, requested []string,
	kwargs AesMapping, gk GroupKey, theme *Theme) (AesMapping, error) {

	c, err := r.components.Lookup(component)
	if err != nil {
		return nil, err
	}

	resolved := make(AesMapping, len(requested))
	for _, attr := range requested {
		if !c.declares(ph, attr) && !reservedAttrs.Contains(attr) {
			return nil, &UnknownAttrError{Component: component, Phase: ph, Attr: attr}
		}

		// Tier 1: explicit user override for this plot call.
		if v, ok := kwargs[attr]; ok {
			resolved[attr] = v
			continue
		}

		// Tier 2: group cycle value.
		if len(gk) > 0 {
			if ch, ok := c.channelFor(attr); ok && r.active[ch] {
				v, err := r.cycles.Assign(theme, ch, gk)
				if err != nil {
					return nil, err
				}
				resolved[attr] = v
				continue
			}
		}

		// Tier 3: component-bound theme category.
		if v, ok := theme.lookup(ph, component, attr); ok {
			resolved[attr] = v
			continue
		}

		// Tier 4: phase-wide theme base.
		if v, ok := theme.lookupBase(ph, attr); ok {
			resolved[attr] = v
			continue
		}

		return nil, &MissingDefaultError{Component: component, Phase: ph, Attr: attr}
	}
	return resolved, nil
}
