package commands

import (
	"context"
	"fmt"

	"github.com/allisson/seikyu/internal/storage"
)

// storageInspector is the part of storage.Service the storage commands use.
type storageInspector interface {
	Entries(ctx context.Context) ([]storage.Entry, error)
	Size(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}

// storageInfo is the JSON output of RunStorageInfo.
type storageInfo struct {
	Driver    string          `json:"driver"`
	Entries   []storage.Entry `json:"entries"`
	TotalSize int             `json:"totalSize"`
}

// RunStorageInfo prints which application keys are stored and their sizes in bytes.
func RunStorageInfo(ctx context.Context, store storageInspector, streams IOTuple, driver, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	entries, err := store.Entries(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect storage: %w", err)
	}
	total, err := store.Size(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute storage size: %w", err)
	}

	if format == FormatJSON {
		return writeJSON(streams.Writer, storageInfo{Driver: driver, Entries: entries, TotalSize: total})
	}

	table := newTable(streams.Writer)
	_, _ = fmt.Fprintf(table, "Driver: %s\n\n", driver)
	_, _ = fmt.Fprintln(table, "KEY\tSTORED\tBYTES")
	for _, e := range entries {
		_, _ = fmt.Fprintf(table, "%s\t%t\t%d\n", e.Key, e.Exists, e.Size)
	}
	_, _ = fmt.Fprintf(table, "TOTAL\t\t%d\n", total)
	return table.Flush()
}

// RunStorageClear removes every application key after confirmation, unless yes is set.
func RunStorageClear(ctx context.Context, store storageInspector, streams IOTuple, yes bool) error {
	if !yes {
		ok, err := confirm(streams, "This permanently deletes all profiles, invoices and the invoice counter. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(streams.Writer, "Aborted.")
			return nil
		}
	}

	if err := store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}

	_, _ = fmt.Fprintln(streams.Writer, "Storage cleared.")
	return nil
}
