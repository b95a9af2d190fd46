package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"torrentmeta/internal/bencode"
	"torrentmeta/internal/torrent"
)

const usage = "usage: torrentmeta parse -file <path> [-bencode]"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "parse":
		os.Exit(runParse(logger, os.Args[2:]))
	default:
		logger.Error("unknown command", slog.String("command", os.Args[1]))
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
}

func runParse(logger *slog.Logger, args []string) int {
	flags := flag.NewFlagSet("parse", flag.ExitOnError)
	var file string
	var bencodeOnly bool
	flags.StringVar(&file, "file", "", "the file to parse, usually something with a .torrent extension")
	flags.BoolVar(&bencodeOnly, "bencode", false, "stop after decoding and print the raw bencoded tree; works on any bencoded file")
	flags.Parse(args)

	if file == "" {
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		logger.Error("failed to read file", slog.Any("error", err))
		return 1
	}

	value, err := bencode.Decode(raw)
	if err != nil {
		logger.Error("failed to decode file", slog.String("file", file), slog.Any("error", err))
		return 1
	}

	if bencodeOnly {
		fmt.Println(value)
		return 0
	}

	meta, err := torrent.Parse(value)
	if err != nil {
		logger.Error("failed to parse torrent", slog.String("file", file), slog.Any("error", err))
		return 1
	}
	fmt.Print(meta)
	return 0
}
