package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/formatting-rotor/internal/format/table"
	"github.com/atomicstack/formatting-rotor/internal/rotor"
	"github.com/muesli/reflow/wordwrap"
)

const usage = `Usage: formatting-rotor [flags] [command]

Commands:
  edit          open the interactive rotor (default)
  list [query]  print the catalog, ranked against query when given
  show          print every setting with its stored value
  help          print this message

Flags:
  -store path       settings file (default under the user config directory)
  -store-kind kind  sqlite, json or memory
  -catalog path     YAML catalog definition
  -width n          viewport width in cells
  -height n         viewport height in rows
  -footer           show key hints
  -verbose          report what was saved on exit
  -trace            write JSON trace entries to the log
  -log-file path    log destination
`

func runList(cfg Config, out io.Writer, query string) error {
	c, _, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	matches := c.Filter(query)
	if len(matches) == 0 {
		fmt.Fprintf(out, "No settings match %q\n", query)
		return nil
	}
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{m.Category, m.Item.Name, m.Item.Key})
	}
	tbl := table.Table{
		Header: []string{"CATEGORY", "SETTING", "KEY"},
		Rows:   rows,
	}
	fmt.Fprintln(out, tbl.String())
	return nil
}

func runShow(cfg Config, out io.Writer) error {
	c, schema, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cfg, schema)
	if err != nil {
		return err
	}
	defer closeStore()

	values, err := store.ReadCurrentValues()
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	rows := make([][]string, 0, len(values))
	for _, m := range c.Entries() {
		value := ""
		if v, ok := values[m.Item.Key]; ok {
			value = schema.Describe(m.Item.Key, v)
		}
		rows = append(rows, []string{m.Category, m.Item.Name, value})
	}
	tbl := table.Table{
		Header: []string{"CATEGORY", "SETTING", "VALUE"},
		Rows:   rows,
	}
	fmt.Fprintln(out, tbl.String())
	return nil
}

func runHelp(out io.Writer) error {
	fmt.Fprint(out, usage)
	fmt.Fprintln(out)
	for _, line := range strings.Split(wordwrap.String(rotor.Help, 78), "\n") {
		fmt.Fprintln(out, line)
	}
	return nil
}
