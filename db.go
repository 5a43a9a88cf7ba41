package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
)

const (
	customerCount = 50
	saleCount     = 200
)

// DB wraps the DuckDB store holding the seeded customers and sales tables.
type DB struct {
	conn    *sql.DB
	dataDir string
}

func NewDB(dataDir string) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	dbPath := filepath.Join(dataDir, "sales.duckdb")

	// Check if database needs to be initialized
	needsInit := false
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		needsInit = true
	}

	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		if logger != nil {
			logger.Error("Failed to open DuckDB database", "error", err, "db_path", dbPath)
		}
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	d := &DB{
		conn:    db,
		dataDir: dataDir,
	}

	if needsInit {
		if err := d.seedSampleData(); err != nil {
			db.Close()
			if logger != nil {
				logger.Error("Database seeding failed", "error", err, "data_dir", dataDir)
			}
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
		if logger != nil {
			logger.Info("Database seeded successfully", "db_path", dbPath,
				"customers", customerCount, "sales", saleCount)
		}
	}

	return d, nil
}

// Reseed drops and recreates the sample dataset. The generator is seeded
// with a fixed value, so repeated reseeds produce identical tables.
func (d *DB) Reseed() error {
	for _, stmt := range []string{
		`DROP TABLE IF EXISTS sales`,
		`DROP TABLE IF EXISTS customers`,
	} {
		if _, err := d.conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}
	}
	return d.seedSampleData()
}

// seedSampleData creates the customers and sales tables and fills them with
// a deterministic sample dataset: Indian retail customers and a year of
// sales ending at the pipeline's pinned current date.
func (d *DB) seedSampleData() error {
	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // Ignore error - will fail if transaction was committed
	}()

	_, err = tx.Exec(`
		CREATE TABLE customers (
			customer_id   VARCHAR PRIMARY KEY,
			name          VARCHAR NOT NULL,
			city          VARCHAR NOT NULL,
			loyalty_level VARCHAR NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create customers table: %w", err)
	}

	_, err = tx.Exec(`
		CREATE TABLE sales (
			sale_id      VARCHAR PRIMARY KEY,
			product_name VARCHAR NOT NULL,
			sale_amount  INTEGER NOT NULL,
			sale_date    DATE NOT NULL,
			customer_id  VARCHAR NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create sales table: %w", err)
	}

	firstNames := []string{"Aarav", "Vivaan", "Aditya", "Vihaan", "Arjun", "Sai", "Reyansh", "Ayaan",
		"Krishna", "Ishaan", "Anika", "Saanvi", "Aadhya", "Myra", "Aarohi", "Ananya", "Diya", "Pari"}
	lastNames := []string{"Sharma", "Verma", "Gupta", "Singh", "Patel", "Kumar", "Das", "Mehta", "Reddy", "Jain"}
	cities := []string{"Mumbai", "Delhi", "Bengaluru", "Kolkata", "Chennai", "Hyderabad", "Pune", "Ahmedabad"}
	loyaltyLevels := []string{"Gold", "Silver", "Bronze", "Platinum"}
	products := []string{"Quantum Widget", "Hyper-Sprocket", "Nano-Gear", "Omega Drive", "Pico-Relay",
		"Zeta Capacitor", "Epsilon Diode"}

	rng := rand.New(rand.NewSource(42))

	insertCustomer, err := tx.Prepare(`INSERT INTO customers VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare customer insert: %w", err)
	}
	defer insertCustomer.Close()

	customerIDs := make([]string, 0, customerCount)
	for i := 0; i < customerCount; i++ {
		id := fmt.Sprintf("cust::%03d", i+1)
		customerIDs = append(customerIDs, id)
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		_, err = insertCustomer.Exec(id, name, cities[rng.Intn(len(cities))],
			loyaltyLevels[rng.Intn(len(loyaltyLevels))])
		if err != nil {
			return fmt.Errorf("failed to insert customer %s: %w", id, err)
		}
	}

	insertSale, err := tx.Prepare(`INSERT INTO sales VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare sale insert: %w", err)
	}
	defer insertSale.Close()

	// Sales span the year ending at the pinned current date (2025-08-17).
	startDate := time.Date(2024, time.August, 17, 0, 0, 0, 0, time.UTC)
	for i := 0; i < saleCount; i++ {
		id := fmt.Sprintf("sale::%03d", i+1)
		saleDate := startDate.AddDate(0, 0, rng.Intn(366))
		_, err = insertSale.Exec(id, products[rng.Intn(len(products))],
			500+rng.Intn(14501), saleDate.Format("2006-01-02"),
			customerIDs[rng.Intn(len(customerIDs))])
		if err != nil {
			return fmt.Errorf("failed to insert sale %s: %w", id, err)
		}
	}

	for _, stmt := range []string{
		`CREATE INDEX idx_sales_customer_id ON sales(customer_id)`,
		`CREATE INDEX idx_customers_city_name ON customers(city, name)`,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed data: %w", err)
	}
	return nil
}

// ExecuteQuery runs an arbitrary query and returns every row as a
// column-name -> value map. It is the query-executor collaborator of the
// report pipeline: any error it returns feeds the correction loop.
func (d *DB) ExecuteQuery(ctx context.Context, query string) ([]map[string]any, error) {
	rows, err := d.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	values := make([]any, len(columns))
	valuePtrs := make([]any, len(columns))
	for i := range columns {
		valuePtrs[i] = &values[i]
	}

	results := []map[string]any{}
	for rows.Next() {
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			v := values[i]
			switch typed := v.(type) {
			case []byte:
				row[col] = string(typed)
			case time.Time:
				row[col] = typed.Format("2006-01-02")
			default:
				row[col] = typed
			}
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (d *DB) Close() error {
	return d.conn.Close()
}
