package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"weather-app/internal/domain/model"
	"weather-app/pkg/msg"
)

// Terminal keeps a Page and prints every visible change to out
type Terminal struct {
	*Page
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{Page: NewPage(), out: out}
}

// Prompt writes the prompt and reads one line into the city input.
// It returns false when input is exhausted.
func (t *Terminal) Prompt(scanner *bufio.Scanner) bool {
	fmt.Fprint(t.out, msg.GetMessage("cli.prompt"))
	if !scanner.Scan() {
		return false
	}
	t.CityInput = scanner.Text()
	return true
}

func (t *Terminal) ShowLoading() {
	t.Page.ShowLoading()
	fmt.Fprintln(t.out, msg.GetMessage("cli.loading"))
}

func (t *Terminal) ShowResult(response *model.WeatherResponse) {
	t.Page.ShowResult(response)

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.Heading)

	w := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join([]string{
		msg.GetMessage("cli.table.date"),
		msg.GetMessage("cli.table.max"),
		msg.GetMessage("cli.table.min"),
		msg.GetMessage("cli.table.precipitation"),
	}, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(w, strings.Join(row[:], "\t"))
	}
	_ = w.Flush()

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.Forecast)
	fmt.Fprintln(t.out)
}

func (t *Terminal) ShowError(message string) {
	t.Page.ShowError(message)
	fmt.Fprintln(t.out, t.ErrorText)
}
