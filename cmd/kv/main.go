package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kjk/kvlog"
	"github.com/tidwall/pretty"
)

const usageText = `usage: kv [-pretty] <db-path> <command> [args]

commands:
  set <key> <value>    set key to value (value is JSON text)
  unset <key>          remove key
  get <key>            print the value for key, an empty line if absent
  list                 print all live keys and values as a JSON object
`

var prettyOutput = flag.Bool("pretty", false, "pretty-print JSON output")

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(2)
	}
	dbPath, cmd, args := args[0], args[1], args[2:]

	// json.RawMessage keeps the CLI agnostic of value shape: numbers,
	// strings, arrays and objects all pass through verbatim
	store, err := kvlog.Open(dbPath, kvlog.JSONCodec[json.RawMessage]{})
	if err != nil {
		fatalf("opening %s: %v", dbPath, err)
	}
	defer store.Close()

	switch cmd {
	case "set":
		requireArgs(cmd, args, 2)
		var value json.RawMessage
		if err := json.Unmarshal([]byte(args[1]), &value); err != nil {
			fatalf("invalid value %q: %v", args[1], err)
		}
		if err := store.Set(args[0], value); err != nil {
			fatalf("%v", err)
		}
	case "unset":
		requireArgs(cmd, args, 1)
		if err := store.Unset(args[0]); err != nil {
			fatalf("%v", err)
		}
	case "get":
		requireArgs(cmd, args, 1)
		value, ok, err := store.Get(args[0])
		if err != nil {
			fatalf("%v", err)
		}
		if !ok {
			fmt.Println()
			return
		}
		printJSON(value)
	case "list":
		requireArgs(cmd, args, 0)
		m, err := store.LoadMap()
		if err != nil {
			fatalf("%v", err)
		}
		d, err := json.Marshal(m)
		if err != nil {
			fatalf("%v", err)
		}
		printJSON(d)
	default:
		fatalf("unknown command %q", cmd)
	}
}

func printJSON(d []byte) {
	if *prettyOutput {
		d = pretty.Pretty(d)
	}
	d = bytes.TrimRight(d, "\n")
	fmt.Printf("%s\n", d)
}

func requireArgs(cmd string, args []string, n int) {
	if len(args) != n {
		fmt.Fprintf(os.Stderr, "kv: wrong number of arguments for %s\n\n", cmd)
		flag.Usage()
		os.Exit(2)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "kv: "+format+"\n", args...)
	os.Exit(1)
}
