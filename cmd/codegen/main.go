package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/hiDandelion/signalkit/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const maxArityKey = "arity"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the arity-specific combine operators",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  maxArityKey,
				Usage: "Highest CombineLatestN arity to generate",
				Value: 8,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for signal started")
	defer func() {
		log.Printf("Codegen for signal finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(maxArityKey))
	if maxArity < 2 {
		maxArity = 2
	}
	log.Printf("Max arity: %d", maxArity)

	contents := templates.CombineGen(maxArity)
	return os.WriteFile("signal/combine_gen.go", []byte(contents), 0644)
}
