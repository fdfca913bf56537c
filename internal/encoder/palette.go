package encoder

import "github.com/fatih/color"

// Palette maps token classes to terminal colors. Any nil entry leaves
// that class unpainted, and a nil *Palette paints nothing, so the
// encoder can call the paint methods unconditionally.
type Palette struct {
	Key    *color.Color
	String *color.Color
	Number *color.Color
	Bool   *color.Color
	Null   *color.Color
	Punct  *color.Color
}

// DefaultPalette is the scheme used for terminal output. Punctuation
// stays unpainted.
func DefaultPalette() *Palette {
	return &Palette{
		Key:    color.New(color.FgBlue),
		String: color.New(color.FgGreen),
		Number: color.New(color.FgCyan),
		Bool:   color.New(color.FgYellow),
		Null:   color.New(color.FgMagenta),
	}
}

// Force turns every entry on regardless of terminal detection, for
// callers that want color even when output is piped.
func (p *Palette) Force() {
	for _, c := range []*color.Color{p.Key, p.String, p.Number, p.Bool, p.Null, p.Punct} {
		if c != nil {
			c.EnableColor()
		}
	}
}

func (p *Palette) key(s string) string {
	if p == nil || p.Key == nil {
		return s
	}
	return p.Key.Sprint(s)
}

func (p *Palette) str(s string) string {
	if p == nil || p.String == nil {
		return s
	}
	return p.String.Sprint(s)
}

func (p *Palette) num(s string) string {
	if p == nil || p.Number == nil {
		return s
	}
	return p.Number.Sprint(s)
}

func (p *Palette) boolean(s string) string {
	if p == nil || p.Bool == nil {
		return s
	}
	return p.Bool.Sprint(s)
}

func (p *Palette) null(s string) string {
	if p == nil || p.Null == nil {
		return s
	}
	return p.Null.Sprint(s)
}

func (p *Palette) punct(s string) string {
	if p == nil || p.Punct == nil {
		return s
	}
	return p.Punct.Sprint(s)
}
