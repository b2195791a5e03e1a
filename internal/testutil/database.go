package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the test database. Expects a MySQL instance on
// localhost:3306 with a database named 'radagast_test'; tests are
// skipped when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/radagast_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties all tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{
		"order_products", "orders",
		"invoice_items", "invoices",
		"transactions",
		"catalog_products", "products", "clients",
	}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by the repository tests.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createClientsTable := `
	CREATE TABLE IF NOT EXISTS clients (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		document VARCHAR(100) NOT NULL,
		street VARCHAR(255) NOT NULL,
		number VARCHAR(50) NOT NULL,
		complement VARCHAR(255),
		city VARCHAR(100) NOT NULL,
		state VARCHAR(100) NOT NULL,
		zip_code VARCHAR(20) NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`

	createProductsTable := `
	CREATE TABLE IF NOT EXISTS products (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		purchase_price DECIMAL(10,2) NOT NULL,
		stock INT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`

	createCatalogProductsTable := `
	CREATE TABLE IF NOT EXISTS catalog_products (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		sales_price DECIMAL(10,2) NOT NULL
	)`

	createTransactionsTable := `
	CREATE TABLE IF NOT EXISTS transactions (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		order_id VARCHAR(36) NOT NULL,
		amount DECIMAL(10,2) NOT NULL,
		status VARCHAR(50) NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		INDEX idx_order (order_id)
	)`

	createInvoicesTable := `
	CREATE TABLE IF NOT EXISTS invoices (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		document VARCHAR(100) NOT NULL,
		street VARCHAR(255) NOT NULL,
		number VARCHAR(50) NOT NULL,
		complement VARCHAR(255),
		city VARCHAR(100) NOT NULL,
		state VARCHAR(100) NOT NULL,
		zip_code VARCHAR(20) NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`

	createInvoiceItemsTable := `
	CREATE TABLE IF NOT EXISTS invoice_items (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		invoice_id VARCHAR(36) NOT NULL,
		name VARCHAR(255) NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		INDEX idx_invoice (invoice_id)
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS orders (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		client_id VARCHAR(36) NOT NULL,
		client_name VARCHAR(255) NOT NULL,
		client_email VARCHAR(255) NOT NULL,
		client_document VARCHAR(100) NOT NULL,
		street VARCHAR(255) NOT NULL,
		number VARCHAR(50) NOT NULL,
		complement VARCHAR(255),
		city VARCHAR(100) NOT NULL,
		state VARCHAR(100) NOT NULL,
		zip_code VARCHAR(20) NOT NULL,
		status VARCHAR(50) NOT NULL,
		total DECIMAL(10,2) NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		INDEX idx_client (client_id)
	)`

	createOrderProductsTable := `
	CREATE TABLE IF NOT EXISTS order_products (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		order_id VARCHAR(36) NOT NULL,
		product_id VARCHAR(36) NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		sales_price DECIMAL(10,2) NOT NULL,
		position INT NOT NULL,
		INDEX idx_order (order_id)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"clients", createClientsTable},
		{"products", createProductsTable},
		{"catalog_products", createCatalogProductsTable},
		{"transactions", createTransactionsTable},
		{"invoices", createInvoicesTable},
		{"invoice_items", createInvoiceItemsTable},
		{"orders", createOrdersTable},
		{"order_products", createOrderProductsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
