package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"mkuznets.com/go/tabwriter"
)

// Item is one row of a fetch result in CLI output.
type Item struct {
	ID        string `json:"id"`
	Published string `json:"published,omitempty"`
	Channel   string `json:"channel,omitempty"`
	Title     string `json:"title"`
	Detail    string `json:"detail,omitempty"`
}

func (it *Item) Row() string {
	return fmt.Sprintf(
		"%s\t%s\t%s\t%s\t%s",
		it.ID,
		it.Published,
		truncate(it.Channel, 20),
		truncate(it.Title, 40),
		it.Detail,
	)
}

type Formatter interface {
	Put(item *Item) error
	Flush() error
}

type Table struct {
	tw *tabwriter.Writer
}

func NewTable(w io.Writer) Formatter {
	return &Table{
		tw: tabwriter.NewWriter(w, 10, 1, 2, ' ', 0),
	}
}

func (t *Table) Put(item *Item) error {
	_, err := fmt.Fprintln(t.tw, item.Row())
	return err
}

func (t *Table) Flush() error {
	return t.tw.Flush()
}

type JSON struct {
	output io.Writer
	items  []*Item
}

func NewJSON(w io.Writer) Formatter {
	return &JSON{output: w}
}

func (j *JSON) Put(item *Item) error {
	j.items = append(j.items, item)
	return nil
}

func (j *JSON) Flush() error {
	enc := json.NewEncoder(j.output)
	enc.SetIndent("", "  ")
	return enc.Encode(j.items)
}

func truncate(s string, n int) string {
	return runewidth.Truncate(s, n, "...")
}
