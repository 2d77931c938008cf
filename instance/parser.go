package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/hgsrr/problem"
)

// Sentinel errors, reported at load time per spec.md §7's Instance error
// kind.
var (
	// ErrMissingCapacity indicates no "CAPACITY : <q>" header line was found.
	ErrMissingCapacity = errors.New("instance: missing CAPACITY header")

	// ErrNoNodes indicates NODE_COORD_SECTION contained no entries.
	ErrNoNodes = errors.New("instance: no nodes declared")

	// ErrMalformedLine indicates a line did not match its section's
	// expected field count or types.
	ErrMalformedLine = errors.New("instance: malformed line")

	// ErrUnknownNodeID indicates a DEMAND_SECTION or DEPOT_SECTION entry,
	// or the depot fallback, referenced an id NODE_COORD_SECTION never
	// declared.
	ErrUnknownNodeID = errors.New("instance: node id not declared in NODE_COORD_SECTION")
)

type section int

const (
	sectionNone section = iota
	sectionNodeCoord
	sectionDemand
	sectionDepot
)

// Load parses r as a TSPLIB/DIMACS-style CVRP instance and builds a
// problem.Problem via problem.Builder, forwarding opts (e.g. the result of
// config.Config.ProblemOptions()) to problem.NewBuilder.
//
// The file's node ids need not be 0-based or contiguous: the depot (the id
// named by DEPOT_SECTION, or the smallest declared id if DEPOT_SECTION is
// absent or empty) becomes builder id 0, and every other id is remapped to
// 1..N in ascending file-id order, matching Builder's own "depot is 0,
// customers are 1..n" convention.
func Load(r io.Reader, opts ...problem.BuilderOption) (*problem.Problem, error) {
	coords := make(map[int][2]float64)
	demands := make(map[int]int)
	var order []int
	seen := make(map[int]bool)

	capacity := 0
	haveCapacity := false
	depotID := -1

	sec := sectionNone
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == "EOF" {
			continue
		}

		switch line {
		case "NODE_COORD_SECTION":
			sec = sectionNodeCoord
			continue
		case "DEMAND_SECTION":
			sec = sectionDemand
			continue
		case "DEPOT_SECTION":
			sec = sectionDepot
			continue
		}

		var err error
		switch sec {
		case sectionNone:
			err = parseHeaderLine(line, &capacity, &haveCapacity)
		case sectionNodeCoord:
			err = parseNodeCoordLine(line, coords, seen, &order)
		case sectionDemand:
			err = parseDemandLine(line, demands)
		case sectionDepot:
			depotID, err = parseDepotLine(line, depotID)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if !haveCapacity {
		return nil, ErrMissingCapacity
	}
	if len(order) == 0 {
		return nil, ErrNoNodes
	}

	sort.Ints(order)
	if depotID == -1 {
		depotID = order[0]
	}

	return buildProblem(order, depotID, coords, demands, capacity, opts)
}

func parseHeaderLine(line string, capacity *int, haveCapacity *bool) error {
	key, val, ok := strings.Cut(line, ":")
	if !ok {
		return nil // not every header line is a key; tolerate free-form comments
	}
	if strings.TrimSpace(key) != "CAPACITY" {
		return nil
	}
	q, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	*capacity = q
	*haveCapacity = true
	return nil
}

func parseNodeCoordLine(line string, coords map[int][2]float64, seen map[int]bool, order *[]int) error {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	id, err1 := strconv.Atoi(fields[0])
	x, err2 := strconv.ParseFloat(fields[1], 64)
	y, err3 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	coords[id] = [2]float64{x, y}
	if !seen[id] {
		seen[id] = true
		*order = append(*order, id)
	}
	return nil
}

func parseDemandLine(line string, demands map[int]int) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	id, err1 := strconv.Atoi(fields[0])
	d, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	demands[id] = d
	return nil
}

func parseDepotLine(line string, current int) (int, error) {
	id, err := strconv.Atoi(line)
	if err != nil {
		return current, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	if id == -1 {
		return current, nil
	}
	if current != -1 {
		return current, nil // first DEPOT_SECTION entry wins; a single-depot fleet is assumed
	}
	return id, nil
}

func buildProblem(order []int, depotID int, coords map[int][2]float64, demands map[int]int, capacity int, opts []problem.BuilderOption) (*problem.Problem, error) {
	b := problem.NewBuilder(opts...)

	depotCoord, ok := coords[depotID]
	if !ok {
		return nil, fmt.Errorf("%w: depot id %d", ErrUnknownNodeID, depotID)
	}
	if err := b.AddNode(0, demands[depotID], depotCoord[0], depotCoord[1]); err != nil {
		return nil, err
	}

	nextID := 1
	for _, fileID := range order {
		if fileID == depotID {
			continue
		}
		c, ok := coords[fileID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownNodeID, fileID)
		}
		if err := b.AddNode(nextID, demands[fileID], c[0], c[1]); err != nil {
			return nil, err
		}
		nextID++
	}

	if err := b.SetCapacity(capacity); err != nil {
		return nil, err
	}

	return b.Build()
}
