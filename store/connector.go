package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/vikalpis/scroll-app/models"
)

// maxPoolSize bounds the number of open connections to the store.
const maxPoolSize = 10

// Connector hands out the process-wide database handle. The first
// Connect call opens the connection; callers racing before it
// resolves share a single in-flight attempt. A failed attempt is
// forgotten so a later call can retry.
type Connector struct {
	open  func() (*gorm.DB, error)
	group singleflight.Group

	mu   sync.RWMutex
	conn *gorm.DB
}

func NewConnector(dsn string) *Connector {
	return &Connector{open: func() (*gorm.DB, error) { return openMySQL(dsn) }}
}

// Connect returns the cached handle, opening it on first use.
func (c *Connector) Connect(ctx context.Context) (*gorm.DB, error) {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn != nil {
		return conn, nil
	}

	v, err, _ := c.group.Do("connect", func() (interface{}, error) {
		db, err := c.open()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.conn = db
		c.mu.Unlock()
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*gorm.DB), nil
}

func openMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxPoolSize)

	if err := db.AutoMigrate(&models.User{}, &models.Video{}); err != nil {
		return nil, err
	}
	log.Info().Msg("database connected")
	return db, nil
}
