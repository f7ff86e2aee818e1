// Package store implements the local draft store: whole-collection
// key-value persistence for records kept outside the remote backend.
// Each collection is one row holding a JSON-encoded array under a key
// namespaced per business ("<business>_<entity>").  Every mutation
// reads the full collection, transforms it and writes it back; the
// last writer wins.  On first load of an empty collection the store
// seeds it with fixture data and persists the seed.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/joacia/laundry-service/internal/model"
)

// Collection name suffixes.
const (
	colBookings  = "bookings"
	colOrders    = "orders"
	colCustomers = "customers"
	colInventory = "inventory"
	colSettings  = "settings"
)

// Store is a draft store backed by an embedded SQLite database.
type Store struct {
	db     *sqlx.DB
	prefix string
}

// Open opens (or creates) the draft store database at path.  prefix
// namespaces the collection keys, e.g. "joacia" -> "joacia_bookings".
// Use ":memory:" as path for an ephemeral store in tests.
func Open(path, prefix string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open draft store: %w", err)
	}
	// sqlite gives every connection to ":memory:" its own database;
	// a single connection also serializes the read-modify-write cycle.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		data TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init draft store: %w", err)
	}
	return &Store{db: db, prefix: prefix}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) key(name string) string { return s.prefix + "_" + name }

// load reads a collection into out.  When the collection is absent it
// is seeded: seed is persisted first, then decoded into out so the
// caller observes exactly what was written.
func (s *Store) load(name string, out any, seed any) error {
	var data string
	err := s.db.Get(&data, `SELECT data FROM collections WHERE name = ?`, s.key(name))
	if err == sql.ErrNoRows {
		if seed == nil {
			seed = []struct{}{}
		}
		if err := s.save(name, seed); err != nil {
			return err
		}
		err = s.db.Get(&data, `SELECT data FROM collections WHERE name = ?`, s.key(name))
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// save replaces the whole collection with the given records.
func (s *Store) save(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO collections (name, data) VALUES (?, ?)`,
		s.key(name), string(data))
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// Bookings loads the booking collection, seeding fixtures on first use.
func (s *Store) Bookings() ([]model.Booking, error) {
	var out []model.Booking
	err := s.load(colBookings, &out, seedBookings())
	return out, err
}

// SaveBookings replaces the booking collection.
func (s *Store) SaveBookings(b []model.Booking) error { return s.save(colBookings, b) }

// Orders loads the order collection, seeding fixtures on first use.
func (s *Store) Orders() ([]model.Order, error) {
	var out []model.Order
	err := s.load(colOrders, &out, seedOrders())
	return out, err
}

// SaveOrders replaces the order collection.
func (s *Store) SaveOrders(o []model.Order) error { return s.save(colOrders, o) }

// Customers loads the customer collection, seeding fixtures on first use.
func (s *Store) Customers() ([]model.Customer, error) {
	var out []model.Customer
	err := s.load(colCustomers, &out, seedCustomers())
	return out, err
}

// SaveCustomers replaces the customer collection.
func (s *Store) SaveCustomers(c []model.Customer) error { return s.save(colCustomers, c) }

// Inventory loads the inventory collection, seeding fixtures on first use.
func (s *Store) Inventory() ([]model.InventoryItem, error) {
	var out []model.InventoryItem
	err := s.load(colInventory, &out, seedInventory())
	return out, err
}

// SaveInventory replaces the inventory collection.
func (s *Store) SaveInventory(i []model.InventoryItem) error { return s.save(colInventory, i) }

// Settings loads arbitrary settings (business details, price
// overrides) into out.  No seeding; absent settings decode as zero
// values.
func (s *Store) Settings(out any) error {
	var data string
	err := s.db.Get(&data, `SELECT data FROM collections WHERE name = ?`, s.key(colSettings))
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	return json.Unmarshal([]byte(data), out)
}

// SaveSettings replaces the persisted settings.
func (s *Store) SaveSettings(v any) error { return s.save(colSettings, v) }
