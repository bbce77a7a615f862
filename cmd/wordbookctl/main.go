// wordbookctl is a terminal client for the wordbook gateway. It covers the
// same operations as the management surface: list, search, edit, delete,
// clear and CSV export, plus the trigger mode setting.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/befoot1242/wordbook/internal/client"
	"github.com/befoot1242/wordbook/internal/domain"
	"github.com/befoot1242/wordbook/internal/export"
	"github.com/befoot1242/wordbook/internal/manage"
)

const defaultAddr = "http://localhost:8080"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "wordbookctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("wordbookctl", flag.ExitOnError)
	addr := global.String("addr", envOr("WORDBOOK_ADDR", defaultAddr), "gateway address")
	global.Usage = usage
	if err := global.Parse(args); err != nil {
		return err
	}

	rest := global.Args()
	if len(rest) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := client.New(*addr)

	switch rest[0] {
	case "list":
		return cmdList(ctx, c, rest[1:])
	case "save":
		return cmdSave(ctx, c, rest[1:])
	case "update":
		return cmdUpdate(ctx, c, rest[1:])
	case "delete":
		return cmdDelete(ctx, c, rest[1:])
	case "clear":
		return cmdClear(ctx, c, rest[1:])
	case "export":
		return cmdExport(ctx, c, rest[1:])
	case "settings":
		return cmdSettings(ctx, c, rest[1:])
	case "stats":
		return cmdStats(ctx, c)
	default:
		usage()
		return fmt.Errorf("unknown command %q", rest[0])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: wordbookctl [-addr URL] <command>

Commands:
  list [-q term]                      list cards, newest first
  save -word W [-meaning M] [-sentence S] [-url U]
  update <id> [-word W] [-meaning M] [-sentence S]
  delete <id>
  clear [-yes]                        delete every card
  export [-o file]                    download the collection as CSV
  settings [get | set <mode>]         trigger mode: selection, click, key
  stats                               collection size`)
}

func cmdList(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	term := fs.String("q", "", "filter by word, meaning or sentence")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list := manage.NewList(c)
	if err := list.Load(ctx); err != nil {
		return err
	}
	list.Search(*term)

	cards := list.Filtered()
	if len(cards) == 0 {
		fmt.Println("no words registered")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWORD\tMEANING\tREGISTERED")
	for _, card := range cards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			card.ID, card.Word, card.Meaning, export.FormatDate(card.Timestamp))
	}
	return w.Flush()
}

func cmdSave(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	word := fs.String("word", "", "the word to register (required)")
	meaning := fs.String("meaning", "", "optional meaning")
	sentence := fs.String("sentence", "", "optional context sentence")
	pageURL := fs.String("url", "", "optional source URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	draft := domain.Draft{
		Word:      *word,
		Meaning:   *meaning,
		Sentence:  *sentence,
		URL:       *pageURL,
		Timestamp: time.Now(),
	}.Trimmed()
	if err := draft.Validate(); err != nil {
		return err
	}

	id, err := c.Save(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Printf("saved %s (%s)\n", draft.Word, id)
	return nil
}

func cmdUpdate(ctx context.Context, c *client.Client, args []string) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return fmt.Errorf("update needs a card id")
	}
	id := args[0]

	fs := flag.NewFlagSet("update", flag.ExitOnError)
	word := fs.String("word", "", "new word")
	meaning := fs.String("meaning", "", "new meaning")
	sentence := fs.String("sentence", "", "new sentence")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var upd domain.Update
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "word":
			upd.Word = word
		case "meaning":
			upd.Meaning = meaning
		case "sentence":
			upd.Sentence = sentence
		}
	})
	if upd.Word == nil && upd.Meaning == nil && upd.Sentence == nil {
		return fmt.Errorf("nothing to update, pass -word, -meaning or -sentence")
	}
	if err := upd.Validate(); err != nil {
		return err
	}

	if err := c.Update(ctx, id, upd); err != nil {
		return err
	}
	fmt.Printf("updated %s\n", id)
	return nil
}

func cmdDelete(ctx context.Context, c *client.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("delete needs a card id")
	}
	if err := c.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

func cmdClear(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("clear", flag.ExitOnError)
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !*yes {
		fmt.Print("delete ALL registered words? [y/N] ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			fmt.Println("aborted")
			return nil
		}
	}

	if err := c.Clear(ctx); err != nil {
		return err
	}
	fmt.Println("collection cleared")
	return nil
}

func cmdExport(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("o", "", "output file (default: filename suggested by the gateway)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var buf strings.Builder
	filename, err := c.Export(ctx, &buf)
	if err != nil {
		return err
	}

	target := *out
	if target == "" {
		target = filename
	}
	if target == "" {
		target = "wordbook.csv"
	}

	if err := os.WriteFile(target, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	fmt.Printf("exported to %s\n", target)
	return nil
}

func cmdSettings(ctx context.Context, c *client.Client, args []string) error {
	if len(args) == 0 || args[0] == "get" {
		settings, err := c.GetSettings(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("trigger mode: %s\n", settings.TriggerMode)
		return nil
	}

	if args[0] != "set" || len(args) < 2 {
		return fmt.Errorf("usage: settings [get | set <selection|click|key>]")
	}

	mode := domain.TriggerMode(args[1])
	if !mode.Valid() {
		return fmt.Errorf("invalid trigger mode %q", args[1])
	}

	if err := c.SaveSettings(ctx, domain.Settings{TriggerMode: mode}); err != nil {
		return err
	}
	fmt.Printf("trigger mode set to %s\n", mode)
	return nil
}

func cmdStats(ctx context.Context, c *client.Client) error {
	count, err := c.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%d words registered\n", count)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
