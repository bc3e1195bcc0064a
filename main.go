package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/vchandela/ddia-btree/btree"
	"github.com/vchandela/ddia-btree/cli"
	"github.com/vchandela/ddia-btree/logger"
)

var (
	degree         *int
	keyKind        *string
	seedNumRecords *int
	logKind        *string
	noColor        *bool
)

func setupFlags() {
	degree = flag.Int("degree", 3, "minimum degree t of the tree (>= 2)")
	keyKind = flag.String("keys", "int", "key type: int or string")
	seedNumRecords = flag.Int("seed", 0, "insert this many generated keys before starting")
	logKind = flag.String("log", "none", "structural event logger: none, slog, zap or logrus")
	noColor = flag.Bool("no-color", false, "disable colored output")
	flag.Parse()
}

func newLogger(kind string) (btree.Logger, error) {
	switch kind {
	case "none":
		return btree.DiscardLogger{}, nil
	case "slog":
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})), nil
	case "zap":
		z, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		return logger.NewZap(z), nil
	case "logrus":
		l := logrus.New()
		l.SetLevel(logrus.DebugLevel)
		return logger.NewLogrus(l), nil
	default:
		return nil, fmt.Errorf("unknown logger %q", kind)
	}
}

// seed inserts n generated keys; collisions with existing keys are skipped.
func seed[K any](t *btree.Tree[K], n int, gen func() K) {
	for i := 0; i < n; i++ {
		if err := t.Insert(gen()); err != nil && !errors.Is(err, btree.ErrDuplicateKey) {
			log.Fatal(err)
		}
	}
}

func start[K any](t *btree.Tree[K], parse cli.ParseFunc[K]) {
	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, os.Stdout, t, parse)
	if *noColor {
		color.NoColor = true
		demo.DisableColor()
	}
	demo.Start()
}

func main() {
	setupFlags()

	l, err := newLogger(*logKind)
	if err != nil {
		log.Fatal(err)
	}

	switch *keyKind {
	case "int":
		tree, err := btree.New[int](*degree, btree.WithLogger(l))
		if err != nil {
			log.Fatal(err)
		}
		seed(tree, *seedNumRecords, func() int { return rand.IntN(10 * (*seedNumRecords + 1)) })
		start(tree, cli.ParseInt)
	case "string":
		tree, err := btree.New[string](*degree, btree.WithLogger(l))
		if err != nil {
			log.Fatal(err)
		}
		seed(tree, *seedNumRecords, func() string { return faker.Word() + faker.Word() })
		start(tree, cli.ParseString)
	default:
		log.Fatalf("unknown key type %q", *keyKind)
	}
}
