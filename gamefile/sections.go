package gamefile

import (
	"fmt"
	"strconv"
	"strings"
)

// readActions reads the actions section: one line per player, a
// comma-separated list of action names.
func readActions(lr *lineReader) ([][]string, error) {
	if _, ok := lr.next(); !ok {
		return nil, ErrMissingActionsSection
	}

	var table [][]string
	for {
		line, ok := lr.next()
		if !ok || line == "" {
			break
		}
		parts := strings.Split(line, ",")
		actions := make([]string, len(parts))
		for i, p := range parts {
			actions[i] = strings.Trim(strings.TrimSpace(p), trimChars)
		}
		table = append(table, actions)
	}
	return table, nil
}

// readLocations reads the locations section: lines of the form
// "<index> = <name>". Indices must cover 0..n-1 exactly.
func readLocations(lr *lineReader) ([]string, error) {
	if _, ok := lr.next(); !ok {
		return nil, ErrMissingLocationsSection
	}

	byIndex := make(map[int]string)
	for {
		line, ok := lr.next()
		if !ok || line == "" {
			break
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("gamefile: malformed location line %q", line)
		}
		idxStr := strings.Trim(strings.TrimSpace(parts[0]), trimChars)
		name := strings.Trim(strings.TrimSpace(parts[1]), trimChars)
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return nil, fmt.Errorf("gamefile: invalid location index %q: %w", idxStr, err)
		}
		if _, dup := byIndex[idx]; dup {
			return nil, fmt.Errorf("gamefile: index %d: %w", idx, ErrDuplicateLocationIndex)
		}
		byIndex[idx] = name
	}

	names := make([]string, len(byIndex))
	for idx, name := range byIndex {
		if idx < 0 || idx >= len(byIndex) {
			return nil, ErrNonCoveringLocationIndices
		}
		names[idx] = name
	}
	return names, nil
}

// readInitialLocation reads the one-line initial-location section: the
// last whitespace-delimited token on the line is the initial state id.
func readInitialLocation(lr *lineReader) (int, error) {
	if _, ok := lr.next(); !ok {
		return 0, ErrMissingInitialLocationSection
	}
	line, ok := lr.next()
	if !ok {
		return 0, ErrMissingInitialLocationSection
	}
	lr.next() // the blank line terminating this section

	words := strings.Fields(line)
	if len(words) == 0 {
		return 0, fmt.Errorf("gamefile: empty initial location line")
	}
	id, err := strconv.Atoi(words[len(words)-1])
	if err != nil {
		return 0, fmt.Errorf("gamefile: invalid initial location id %q: %w", words[len(words)-1], err)
	}
	return id, nil
}

// readObservations reads the observations section: one line per player, a
// '|'-separated list of comma-separated equivalence classes of state ids.
func readObservations(lr *lineReader) ([][][]int, error) {
	if _, ok := lr.next(); !ok {
		return nil, ErrMissingObservationsSection
	}

	var table [][][]int
	for {
		line, ok := lr.next()
		if !ok || line == "" {
			break
		}
		var classes [][]int
		for _, part := range strings.Split(line, "|") {
			var class []int
			for _, tok := range strings.Split(part, ",") {
				v, err := strconv.Atoi(strings.TrimSpace(tok))
				if err != nil {
					return nil, fmt.Errorf("gamefile: invalid observation state id %q: %w", tok, err)
				}
				class = append(class, v)
			}
			classes = append(classes, class)
		}
		table = append(table, classes)
	}
	return table, nil
}

// rawTransition accumulates the successor-state set for one
// (joint action, from state) pair, preserving the order transitions were
// first seen for deterministic SetMove replay.
type rawTransition struct {
	action []string
	from   int
	to     map[int]struct{}
}

// readTransitions reads the transitions section: lines of the form
// "<from> <a0,a1,...> <to>", where each ai indexes the flattened
// concatenation of every player's action list. Multiple lines with the
// same (joint action, from state) accumulate successor states.
func readTransitions(lr *lineReader, actionsTable [][]string) ([]*rawTransition, error) {
	if _, ok := lr.next(); !ok {
		return nil, ErrMissingTransitionsSection
	}

	var flat []string
	for _, actions := range actionsTable {
		flat = append(flat, actions...)
	}

	order := make([]string, 0)
	byKey := make(map[string]*rawTransition)
	for {
		line, ok := lr.next()
		if !ok || line == "" {
			break
		}
		words := strings.Fields(line)
		if len(words) != 3 {
			return nil, fmt.Errorf("gamefile: malformed transition line %q", line)
		}
		from, err := strconv.Atoi(words[0])
		if err != nil {
			return nil, fmt.Errorf("gamefile: invalid transition source state %q: %w", words[0], err)
		}
		to, err := strconv.Atoi(words[2])
		if err != nil {
			return nil, fmt.Errorf("gamefile: invalid transition destination state %q: %w", words[2], err)
		}

		idxToks := strings.Split(words[1], ",")
		action := make([]string, len(idxToks))
		for i, tok := range idxToks {
			ai, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil {
				return nil, fmt.Errorf("gamefile: invalid action index %q: %w", tok, err)
			}
			if ai < 0 || ai >= len(flat) {
				return nil, fmt.Errorf("gamefile: action index %d out of range of the %d flattened actions", ai, len(flat))
			}
			action[i] = flat[ai]
		}

		key := strings.Join(action, "\x1f") + "\x1e" + strconv.Itoa(from)
		rt, ok := byKey[key]
		if !ok {
			rt = &rawTransition{action: action, from: from, to: make(map[int]struct{})}
			byKey[key] = rt
			order = append(order, key)
		}
		rt.to[to] = struct{}{}
	}

	out := make([]*rawTransition, 0, len(order))
	for _, key := range order {
		out = append(out, byKey[key])
	}
	return out, nil
}
