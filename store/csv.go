package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"esthecrm-backend/models"
)

// CSVStore keeps each entity in one delimited text file under a data
// directory (customers.csv, products.csv, ...). Creates append a row;
// updates and deletes rewrite the file, keeping the header, the same way
// the original flat-file server handled finance.csv.
type CSVStore struct {
	customers    *csvTable[models.Customer]
	products     *csvTable[models.Product]
	purchases    *csvTable[models.Purchase]
	appointments *csvTable[models.Appointment]
	finance      *csvTable[models.FinanceRecord]
}

// OpenCSV prepares the data directory and initializes every table file
// with its header row when missing.
func OpenCSV(dir string) (*CSVStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &CSVStore{}
	var err error
	if s.customers, err = newCSVTable(dir, CustomerCodec()); err != nil {
		return nil, err
	}
	if s.products, err = newCSVTable(dir, ProductCodec()); err != nil {
		return nil, err
	}
	if s.purchases, err = newCSVTable(dir, PurchaseCodec()); err != nil {
		return nil, err
	}
	if s.appointments, err = newCSVTable(dir, AppointmentCodec()); err != nil {
		return nil, err
	}
	if s.finance, err = newCSVTable(dir, FinanceCodec()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CSVStore) Customers() Repository[models.Customer] { return s.customers }
func (s *CSVStore) Products() Repository[models.Product] { return s.products }
func (s *CSVStore) Purchases() Repository[models.Purchase] { return s.purchases }
func (s *CSVStore) Appointments() Repository[models.Appointment] { return s.appointments }
func (s *CSVStore) Finance() Repository[models.FinanceRecord] { return s.finance }

type csvTable[T any] struct {
	mu    sync.Mutex
	path  string
	codec Codec[T]
}

func newCSVTable[T any](dir string, codec Codec[T]) (*csvTable[T], error) {
	t := &csvTable[T]{
		path:  filepath.Join(dir, codec.Table+".csv"),
		codec: codec,
	}
	if _, err := os.Stat(t.path); os.IsNotExist(err) {
		if err := t.writeAll(nil); err != nil {
			return nil, fmt.Errorf("init %s: %w", t.path, err)
		}
	}
	return t, nil
}

func (t *csvTable[T]) Create(ctx context.Context, rec *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	stamp(rec, true)
	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", t.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.codec.Encode(rec)); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (t *csvTable[T]) List(ctx context.Context) ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.readAll()
}

func (t *csvTable[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	recs, err := t.readAll()
	if err != nil {
		return nil, err
	}
	for i := range recs {
		if t.codec.ID(&recs[i]) == id {
			return &recs[i], nil
		}
	}
	return nil, ErrNotFound
}

func (t *csvTable[T]) Update(ctx context.Context, rec *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	recs, err := t.readAll()
	if err != nil {
		return err
	}
	id := t.codec.ID(rec)
	for i := range recs {
		if t.codec.ID(&recs[i]) == id {
			stamp(rec, false)
			recs[i] = *rec
			return t.writeAll(recs)
		}
	}
	return ErrNotFound
}

func (t *csvTable[T]) Delete(ctx context.Context, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	recs, err := t.readAll()
	if err != nil {
		return err
	}
	kept := recs[:0]
	found := false
	for i := range recs {
		if t.codec.ID(&recs[i]) == id {
			found = true
			continue
		}
		kept = append(kept, recs[i])
	}
	if !found {
		return ErrNotFound
	}
	return t.writeAll(kept)
}

func (t *csvTable[T]) readAll() ([]T, error) {
	f, err := os.Open(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", t.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows from older headers may be short

	var recs []T
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", t.path, err)
		}
		if first {
			first = false // header
			continue
		}
		recs = append(recs, *t.codec.Decode(padRow(row, len(t.codec.Fields))))
	}
	return recs, nil
}

// writeAll rewrites the file through a temp file so a crash mid-write
// cannot leave a half-written table behind.
func (t *csvTable[T]) writeAll(recs []T) error {
	tmp := t.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.codec.Fields); err != nil {
		f.Close()
		return err
	}
	for i := range recs {
		if err := w.Write(t.codec.Encode(&recs[i])); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, t.path)
}

func padRow(row []string, n int) []string {
	if len(row) >= n {
		return row[:n]
	}
	padded := make([]string, n)
	copy(padded, row)
	return padded
}
