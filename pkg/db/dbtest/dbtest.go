// Package dbtest opens isolated in-memory SQLite databases carrying the
// storefront schema for repository tests. The DDL mirrors the Postgres
// migrations with SQLite-compatible types and defaults.
package dbtest

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbCounter atomic.Int64

// uuidDefault generates a parseable identifier in the canonical dashed
// form, matching what uuid.UUID's driver.Valuer writes into FK columns.
const uuidDefault = "(lower(hex(randomblob(4)) || '-' || hex(randomblob(2)) || '-' || hex(randomblob(2)) || '-' || hex(randomblob(2)) || '-' || hex(randomblob(6))))"

var schema = []string{
	`CREATE TABLE users (
		id text PRIMARY KEY DEFAULT ` + uuidDefault + `,
		email text NOT NULL UNIQUE,
		password_hash text NOT NULL,
		is_active boolean NOT NULL DEFAULT true,
		last_login_at datetime,
		created_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE profiles (
		user_id text PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		full_name text,
		phone text,
		language text NOT NULL DEFAULT 'en' CHECK (language IN ('en', 'hi')),
		data_collection_consent boolean NOT NULL DEFAULT false,
		created_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE categories (
		id text PRIMARY KEY DEFAULT ` + uuidDefault + `,
		name_en text NOT NULL,
		name_hi text NOT NULL,
		icon text,
		sort_order integer NOT NULL DEFAULT 0,
		is_active boolean NOT NULL DEFAULT true,
		created_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE products (
		id text PRIMARY KEY DEFAULT ` + uuidDefault + `,
		category_id text REFERENCES categories(id) ON DELETE SET NULL,
		name text NOT NULL,
		name_hi text,
		brand text,
		unit text,
		price_cents integer NOT NULL CHECK (price_cents >= 0),
		original_price_cents integer,
		discount_percent integer,
		stock_quantity integer NOT NULL DEFAULT 0,
		image_urls text,
		is_active boolean NOT NULL DEFAULT true,
		created_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE cart_items (
		id text PRIMARY KEY DEFAULT ` + uuidDefault + `,
		user_id text NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		product_id text NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		quantity integer NOT NULL CHECK (quantity > 0),
		created_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (user_id, product_id)
	)`,
	`CREATE TABLE orders (
		id text PRIMARY KEY DEFAULT ` + uuidDefault + `,
		user_id text NOT NULL REFERENCES users(id),
		status text NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'confirmed', 'shipped', 'delivered', 'cancelled')),
		payment_method text NOT NULL CHECK (payment_method IN ('cod', 'online')),
		subtotal_cents integer NOT NULL CHECK (subtotal_cents >= 0),
		delivery_fee_cents integer NOT NULL DEFAULT 0 CHECK (delivery_fee_cents >= 0),
		total_cents integer NOT NULL CHECK (total_cents >= 0),
		delivery_address text NOT NULL,
		delivery_phone text NOT NULL,
		created_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE order_items (
		id text PRIMARY KEY DEFAULT ` + uuidDefault + `,
		order_id text NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id text REFERENCES products(id) ON DELETE SET NULL,
		product_name text NOT NULL,
		quantity integer NOT NULL CHECK (quantity > 0),
		unit_price_cents integer NOT NULL CHECK (unit_price_cents >= 0),
		total_price_cents integer NOT NULL CHECK (total_price_cents >= 0),
		created_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE outbox_events (
		id text PRIMARY KEY DEFAULT ` + uuidDefault + `,
		event_type text NOT NULL,
		aggregate_type text NOT NULL,
		aggregate_id text NOT NULL,
		payload text NOT NULL,
		created_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP,
		published_at datetime,
		attempt_count integer NOT NULL DEFAULT 0,
		last_error text
	)`,
}

// Open returns a fresh in-memory database with the full schema applied.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:dbtest%d?mode=memory&cache=shared", dbCounter.Add(1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("extract sql.DB: %v", err)
	}
	// shared-cache in-memory DB lives as long as one connection stays open
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	for _, stmt := range schema {
		if err := gdb.Exec(stmt).Error; err != nil {
			t.Fatalf("apply schema: %v\n%s", err, stmt)
		}
	}
	return gdb
}
