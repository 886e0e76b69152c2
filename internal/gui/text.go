package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

func styled(text string, size fyne.ThemeSizeName, bold bool) *widget.RichText {
	return widget.NewRichText(&widget.TextSegment{
		Text: text,
		Style: widget.RichTextStyle{
			SizeName:  size,
			TextStyle: fyne.TextStyle{Bold: bold},
		},
	})
}

// Heading is the window title text
func Heading(text string) *widget.RichText {
	return styled(text, theme.SizeNameHeadingText, true)
}

// Subheading labels a group of options
func Subheading(text string) *widget.RichText {
	return styled(text, theme.SizeNameSubHeadingText, true)
}

// Caption is small hint text that wraps
func Caption(text string) *widget.RichText {
	c := styled(text, theme.SizeNameCaptionText, false)
	c.Wrapping = fyne.TextWrapWord
	return c
}
