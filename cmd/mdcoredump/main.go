// Command mdcoredump tokenizes a file and prints its event stream, for
// manual inspection of the tokenizer's output and as a harness for the
// property tests in spec §8. Grounded on the teacher's cmd/devcmd entry
// point and runtime/cli's Cobra harness, generalized from a one-shot
// generator CLI into a small read-parse-print tool plus a --watch mode.
package main

import (
	"fmt"
	"os"

	"github.com/aledsdavies/mdcore"
	"github.com/aledsdavies/mdcore/mdconfig"
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var (
	presetName string
	format     string
	watch      bool
)

func main() {
	root := &cobra.Command{
		Use:     "mdcoredump [file]",
		Short:   "Tokenize a Markdown file and print its event stream",
		Args:    cobra.ExactArgs(1),
		RunE:    run,
		Version: "0.1.0",
	}
	root.Flags().StringVar(&presetName, "preset", "commonmark", "construct preset: commonmark, gfm, or mdx")
	root.Flags().StringVar(&format, "format", "text", "output format: text or cbor")
	root.Flags().BoolVar(&watch, "watch", false, "re-tokenize and re-dump on file save")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	path := args[0]

	opt, err := presetOption(presetName)
	if err != nil {
		return err
	}

	if err := dumpOnce(path, opt); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	return watchAndDump(path, opt)
}

func presetOption(name string) (mdconfig.Option, error) {
	preset, err := mdconfig.LoadJSON([]byte(fmt.Sprintf(`{"preset":%q}`, name)))
	if err != nil {
		return nil, err
	}
	return mdconfig.WithPreset(preset.Constructs()), nil
}

func dumpOnce(path string, opt mdconfig.Option) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("mdcoredump: reading %s: %w", path, err)
	}

	events, err := mdcore.Parse(source, opt)
	if err != nil {
		return fmt.Errorf("mdcoredump: parsing %s: %w", path, err)
	}

	switch format {
	case "cbor":
		return dumpCBOR(events)
	default:
		dumpText(events)
		return nil
	}
}

func dumpText(events mdevent.List) {
	depth := 0
	for _, e := range events {
		if e.Kind == mdevent.Exit {
			depth--
		}
		fmt.Printf("%*s%s %s @%d:%d\n", depth*2, "", e.Kind, e.Name, e.Point.Line, e.Point.Column)
		if e.Kind == mdevent.Enter {
			depth++
		}
	}
}

func dumpCBOR(events mdevent.List) error {
	data, err := events.MarshalCanonical()
	if err != nil {
		return fmt.Errorf("mdcoredump: encoding CBOR: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// watchAndDump re-runs dumpOnce on every write to path, once per
// fsnotify event, with no debouncing. Grounded on
// inercia-mitto/internal/config/prompts_watcher.go's single-directory
// fsnotify.Watcher loop, reduced to one file and no subscriber fan-out.
func watchAndDump(path string, opt mdconfig.Option) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("mdcoredump: starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("mdcoredump: watching %s: %w", path, err)
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := dumpOnce(path, opt); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "mdcoredump: watch error:", err)
		}
	}
}
