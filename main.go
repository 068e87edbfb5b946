package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"

	"btree/btree"
	"btree/cli"
	"btree/logger"
)

var (
	degree              *int
	runDemo, noColor    *bool
	seedNumRecords      *int
	logLevel, logFormat *string
)

func seedTreeWithTestRecords(t *btree.Tree[string]) {
	for i := 0; i < *seedNumRecords; i++ {
		t.Insert(faker.Word())
	}
}

func main() {
	setupFlags()
	color.NoColor = color.NoColor || *noColor

	zl, err := logger.New(logger.Config{Level: *logLevel, Format: *logFormat})
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	tree, err := btree.New[string](*degree, btree.WithLogger(logger.NewZap(zl)))
	if err != nil {
		log.Fatal(err)
	}

	if *runDemo {
		if err := cli.RunDemo(os.Stdout, tree); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *seedNumRecords > 0 {
		seedTreeWithTestRecords(tree)
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, os.Stdout, tree)
	demo.Start()
}

func setupFlags() {
	degree = flag.Int("degree", btree.DefaultDegree, "Minimum degree of the B-Tree (at least 2).")
	runDemo = flag.Bool("demo", false, "Insert A..Z, then delete Z..A, printing the tree after every step.")
	seedNumRecords = flag.Int("seed", 0, "Seed the tree with this many random words created with go-faker.")
	logLevel = flag.String("log-level", "warn", "Minimum log level: debug, info, warn or error.")
	logFormat = flag.String("log-format", "console", "Log format: console or json.")
	noColor = flag.Bool("no-color", false, "Disable colored output.")
	flag.Usage = func() {
		fmt.Println("\nB-Tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
