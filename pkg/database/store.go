package database

import (
	"academic_dashboard/internal/config"
	"academic_dashboard/pkg/kvstore"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

// OpenStore builds the key-value backend named by cfg.Store.Driver. The
// returned close function releases the underlying handle.
func OpenStore(cfg *config.Config) (kvstore.Store, func() error, error) {
	switch cfg.Store.Driver {
	case "memory":
		return kvstore.NewMemoryStore(), func() error { return nil }, nil

	case "bolt":
		db, err := InitBolt(cfg.Store.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		s, err := kvstore.NewBoltStore(db, []byte(cfg.Store.Bucket))
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return s, db.Close, nil

	case "redis":
		rdb, err := InitRedis(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return kvstore.NewRedisStore(rdb), rdb.Close, nil

	case "mysql":
		db, err := InitDB(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return kvstore.NewGormStore(db), closeFn, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

func InitBolt(path string) (*bbolt.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}

	log.Println("Bolt store ready at", path)
	return db, nil
}
