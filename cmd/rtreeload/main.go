// Command rtreeload reads whitespace-separated integer coordinate pairs
// from a file, inserts each as a degenerate point rectangle into an
// R-tree, and prints a pre-order dump of the resulting structure.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/eikrem/rtreeidx/geo"
	"github.com/eikrem/rtreeidx/logger"
	"github.com/eikrem/rtreeidx/rtree"
)

const defaultInputPath = "data.txt"

func main() {
	log := logger.NewLogger(os.Stderr, logger.Info)

	path := defaultInputPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	f, err := os.Open(path)
	if err != nil {
		log.Error("opening %s: %s", path, err)
		os.Exit(1)
	}
	defer f.Close()

	tree, count, err := loadTree(f)
	log.FatalIfErr(err, "read %s", path)
	log.Info("loaded %d points from %s", count, path)

	printTree(os.Stdout, tree)
}

// loadTree reads whitespace-separated "x y" integer pairs, one point per
// pair, and inserts each as a degenerate rectangle.
func loadTree(r io.Reader) (*rtree.Tree, int, error) {
	tree := rtree.New()
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	count := 0
	for scanner.Scan() {
		x, err := readInt(scanner)
		if err != nil {
			return nil, 0, fmt.Errorf("reading x coordinate: %w", err)
		}
		if !scanner.Scan() {
			return nil, 0, fmt.Errorf("missing y coordinate for x=%d", x)
		}
		y, err := readInt(scanner)
		if err != nil {
			return nil, 0, fmt.Errorf("reading y coordinate: %w", err)
		}
		p := geo.Point{X: x, Y: y}
		if err := tree.Insert(p, p); err != nil {
			return nil, 0, err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return tree, count, nil
}

func readInt(scanner *bufio.Scanner) (int, error) {
	var n int
	_, err := fmt.Sscanf(scanner.Text(), "%d", &n)
	return n, err
}
