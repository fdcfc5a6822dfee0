package loader

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/nathoo/kerker/engine/world"
	"github.com/nathoo/kerker/types"
)

// Catalog holds item and enemy templates read from a SQLite database.
type Catalog struct {
	Items   map[string]types.ItemTemplate
	Enemies map[string]types.EnemyTemplate
}

var catalogSchema = []string{
	`CREATE TABLE IF NOT EXISTS items (
		name TEXT PRIMARY KEY,
		description TEXT NOT NULL DEFAULT '',
		kind TEXT NOT NULL,
		min_value INTEGER NOT NULL DEFAULT 0,
		max_value INTEGER NOT NULL DEFAULT 0,
		protection INTEGER NOT NULL DEFAULT 0
	);`,
	`CREATE TABLE IF NOT EXISTS enemies (
		name TEXT PRIMARY KEY,
		description TEXT NOT NULL DEFAULT '',
		min_items INTEGER NOT NULL DEFAULT 0,
		max_items INTEGER NOT NULL DEFAULT 0,
		hp INTEGER NOT NULL,
		attack_chance INTEGER NOT NULL DEFAULT 0,
		min_damage INTEGER NOT NULL DEFAULT 0,
		max_damage INTEGER NOT NULL DEFAULT 0
	);`,
}

// OpenCatalog reads every item and enemy template from the SQLite file at
// path. The file is opened read-only and must already exist.
func OpenCatalog(ctx context.Context, path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping catalog: %w", err)
	}

	cat := &Catalog{
		Items:   map[string]types.ItemTemplate{},
		Enemies: map[string]types.EnemyTemplate{},
	}
	if err := cat.readItems(ctx, db); err != nil {
		return nil, err
	}
	if err := cat.readEnemies(ctx, db); err != nil {
		return nil, err
	}
	return cat, nil
}

func (c *Catalog) readItems(ctx context.Context, db *sql.DB) error {
	rows, err := db.QueryContext(ctx,
		`SELECT name, description, kind, min_value, max_value, protection FROM items`)
	if err != nil {
		return fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t types.ItemTemplate
		if err := rows.Scan(&t.Name, &t.Description, &t.Kind, &t.Min, &t.Max, &t.Protection); err != nil {
			return fmt.Errorf("scan item: %w", err)
		}
		c.Items[t.Name] = t
	}
	return rows.Err()
}

func (c *Catalog) readEnemies(ctx context.Context, db *sql.DB) error {
	rows, err := db.QueryContext(ctx,
		`SELECT name, description, min_items, max_items, hp, attack_chance, min_damage, max_damage FROM enemies`)
	if err != nil {
		return fmt.Errorf("query enemies: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t types.EnemyTemplate
		if err := rows.Scan(&t.Name, &t.Description, &t.MinItems, &t.MaxItems,
			&t.HP, &t.AttackChance, &t.MinDamage, &t.MaxDamage); err != nil {
			return fmt.Errorf("scan enemy: %w", err)
		}
		c.Enemies[t.Name] = t
	}
	return rows.Err()
}

// MergeInto copies the catalog templates into defs, replacing templates of
// the same name.
func (c *Catalog) MergeInto(defs *world.Defs) {
	if defs.Items == nil {
		defs.Items = map[string]types.ItemTemplate{}
	}
	if defs.Enemies == nil {
		defs.Enemies = map[string]types.EnemyTemplate{}
	}
	for name, t := range c.Items {
		defs.Items[name] = t
	}
	for name, t := range c.Enemies {
		defs.Enemies[name] = t
	}
}

// ExportCatalog writes the templates in defs to a SQLite file at path,
// creating the tables if needed. Existing rows with the same name are
// replaced.
func ExportCatalog(ctx context.Context, path string, defs *world.Defs) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer db.Close()

	for _, stmt := range catalogSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate catalog: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, name := range sortedKeys(defs.Items) {
		t := defs.Items[name]
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO items (name, description, kind, min_value, max_value, protection)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			t.Name, t.Description, t.Kind, t.Min, t.Max, t.Protection); err != nil {
			return fmt.Errorf("insert item %q: %w", name, err)
		}
	}
	for _, name := range sortedKeys(defs.Enemies) {
		t := defs.Enemies[name]
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO enemies (name, description, min_items, max_items, hp, attack_chance, min_damage, max_damage)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			t.Name, t.Description, t.MinItems, t.MaxItems, t.HP, t.AttackChance, t.MinDamage, t.MaxDamage); err != nil {
			return fmt.Errorf("insert enemy %q: %w", name, err)
		}
	}
	return tx.Commit()
}
