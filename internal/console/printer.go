// Package console writes colored text to a terminal.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type TextColor int

const (
	DefaultText TextColor = iota
	BlackText
	RedText
	GreenText
	YellowText
	BlueText
	PurpleText
	CyanText
	WhiteText
)

type Background int

const (
	DefaultBackground Background = iota
	BlackBackground
	RedBackground
	GreenBackground
	YellowBackground
	BlueBackground
	PurpleBackground
	CyanBackground
	WhiteBackground
)

// Mode decides whether escape codes are written
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

var textAttributes = map[TextColor]color.Attribute{
	BlackText:  color.FgBlack,
	RedText:    color.FgRed,
	GreenText:  color.FgGreen,
	YellowText: color.FgYellow,
	BlueText:   color.FgBlue,
	PurpleText: color.FgMagenta,
	CyanText:   color.FgCyan,
	WhiteText:  color.FgWhite,
}

var backgroundAttributes = map[Background]color.Attribute{
	BlackBackground:  color.BgBlack,
	RedBackground:    color.BgRed,
	GreenBackground:  color.BgGreen,
	YellowBackground: color.BgYellow,
	BlueBackground:   color.BgBlue,
	PurpleBackground: color.BgMagenta,
	CyanBackground:   color.BgCyan,
	WhiteBackground:  color.BgWhite,
}

// Style is the color, boldness and background of printed text
type Style struct {
	Color      TextColor
	Bold       bool
	Background Background
}

var (
	Plain   = Style{}
	Error   = Style{Color: RedText, Bold: true}
	Success = Style{Color: GreenText, Bold: true}
	Warning = Style{Color: YellowText, Bold: true}
	Info    = Style{Color: CyanText, Bold: true}
	Flag    = Style{Color: PurpleText, Bold: true}
)

type Printer struct {
	writer io.Writer
	mode   Mode
}

func NewPrinter(writer io.Writer, mode Mode) *Printer {
	return &Printer{
		writer: writer,
		mode:   mode,
	}
}

// Printf writes the formatted text wrapped in the escape codes of style
func (p *Printer) Printf(style Style, format string, args ...any) {
	c := p.color(style)
	if c == nil {
		_, _ = fmt.Fprintf(p.writer, format, args...)
		return
	}
	_, _ = c.Fprintf(p.writer, format, args...)
}

func (p *Printer) Println(style Style, text string) {
	p.Printf(style, "%s\n", text)
}

func (p *Printer) color(style Style) *color.Color {
	var attributes []color.Attribute
	if attribute, ok := textAttributes[style.Color]; ok {
		attributes = append(attributes, attribute)
	}
	if style.Bold {
		attributes = append(attributes, color.Bold)
	}
	if attribute, ok := backgroundAttributes[style.Background]; ok {
		attributes = append(attributes, attribute)
	}
	if len(attributes) == 0 {
		return nil
	}

	c := color.New(attributes...)
	switch p.mode {
	case ModeAlways:
		c.EnableColor()
	case ModeNever:
		c.DisableColor()
	}
	return c
}
