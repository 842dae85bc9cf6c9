package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Table names a model in the order rows may be inserted. Clearing walks the
// list backwards so dependent rows go first.
type Table struct {
	Name  string
	Model any
}

type Db struct {
	DbConn *gorm.DB
	tables []Table
}

// NewDb opens a shared in-memory SQLite database, migrated for the given tables.
func NewDb(tables []Table) *Db {
	if db == nil {
		once.Do(
			func() {
				db = open(tables)
			},
		)
	}

	return db
}

func open(tables []Table) *Db {
	dbSQL, err := sql.Open("sqlite", "file:wallet_integration?mode=memory&cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		tables: tables,
	}

	if err := newDbMock.migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return newDbMock
}

func (d *Db) migrate() error {
	models := make([]any, 0, len(d.tables))
	for _, table := range d.tables {
		models = append(models, table.Model)
	}

	if err := d.DbConn.AutoMigrate(models...); err != nil {
		return err
	}

	for _, model := range models {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
	}
	return nil
}

// ClearDB deletes every row, dependents first.
func (d *Db) ClearDB() error {
	return d.DbConn.Transaction(func(tx *gorm.DB) error {
		for i := len(d.tables) - 1; i >= 0; i-- {
			err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(d.tables[i].Model).Error
			if err != nil {
				return fmt.Errorf("failed to clear %s: %w", d.tables[i].Name, err)
			}
		}
		return nil
	})
}

func (d *Db) GetModel(table string) (any, bool) {
	for _, t := range d.tables {
		if t.Name == table {
			return t.Model, true
		}
	}
	return nil, false
}
