package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/r0t0r-r0t0r/r0t0blocks/internal/blocks"
	"github.com/r0t0r-r0t0r/r0t0blocks/internal/engine"
)

func main() {
	tileset := "tileset.png"
	if len(os.Args) > 1 {
		tileset = os.Args[1]
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("BLOCKS_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	state := blocks.NewState(blocks.NewFrames(), seed)
	if err := engine.Run(state, tileset); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
