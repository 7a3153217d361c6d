package storages

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Signal struct {
	Program  string
	Phases   []int64
	Feedback bool
	Value    int64
}

// ProgramKey identifies program text in the signals table.
func ProgramKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func InsertSignal(ctx context.Context, tx Tx, signal Signal) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO signals (program, phases, feedback, value) VALUES (?, ?, ?, ?)`,
		signal.Program,
		formatPhases(signal.Phases),
		boolInt(signal.Feedback),
		signal.Value,
	)
	if err != nil {
		return fmt.Errorf("insert signal: %w", err)
	}
	return nil
}

// BestSignal returns the highest recorded signal of program, earliest first on ties.
func BestSignal(ctx context.Context, tx Tx, program string, feedback bool) (signal Signal, ok bool, err error) {
	row, err := tx.QueryRow(ctx,
		`SELECT phases, value FROM signals
		WHERE program = ? AND feedback = ?
		ORDER BY value DESC, rowid ASC
		LIMIT 1`,
		program,
		boolInt(feedback),
	)
	if err != nil {
		return signal, false, fmt.Errorf("query best signal: %w", err)
	}
	var phases string
	if err := row.Scan(&phases, &signal.Value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return signal, false, nil
		}
		return signal, false, fmt.Errorf("scan best signal: %w", err)
	}
	signal.Phases, err = parsePhases(phases)
	if err != nil {
		return signal, false, err
	}
	signal.Program = program
	signal.Feedback = feedback
	return signal, true, nil
}

func CountSignals(ctx context.Context, tx Tx, program string) (n int, err error) {
	row, err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM signals WHERE program = ?`, program)
	if err != nil {
		return 0, fmt.Errorf("count signals: %w", err)
	}
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("count signals: %w", err)
	}
	return n, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func formatPhases(phases []int64) string {
	strs := make([]string, len(phases))
	for i, phase := range phases {
		strs[i] = strconv.FormatInt(phase, 10)
	}
	return strings.Join(strs, ",")
}

func parsePhases(str string) (ret []int64, err error) {
	if str == "" {
		return nil, nil
	}
	for _, part := range strings.Split(str, ",") {
		phase, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad phases %q: %w", str, err)
		}
		ret = append(ret, phase)
	}
	return ret, nil
}
