package data

import (
	"context"
	"fmt"

	"linkstats/internal/conf"
	"linkstats/internal/data/schema"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(NewData, NewClickRepo, NewLinkRepo, NewAnomalyRepo)

const defaultSource = "file:linkstats?mode=memory&cache=shared&_fk=1"

// Data holds the shared store handles.
type Data struct {
	drv *entsql.Driver
	rdb *redis.Client
}

// NewData opens the SQL store, migrates it, and connects the link cache
// when one is configured.
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(log.With(logger, "module", "data"))

	driver, source := dialect.SQLite, defaultSource
	if c != nil && c.Database != nil && c.Database.Driver != "" {
		driver, source = c.Database.Driver, c.Database.Source
	}

	drv, err := entsql.Open(driver, source)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := schema.Create(context.Background(), drv); err != nil {
		drv.Close()
		return nil, nil, fmt.Errorf("migrate schema: %w", err)
	}

	var rdb *redis.Client
	if c != nil && c.Redis != nil && c.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         c.Redis.Addr,
			ReadTimeout:  c.Redis.ReadTimeout.AsDuration(),
			WriteTimeout: c.Redis.WriteTimeout.AsDuration(),
		})
	}

	d := &Data{drv: drv, rdb: rdb}

	cleanup := func() {
		helper.Info("closing the data resources")
		if err := d.drv.Close(); err != nil {
			helper.Error(err)
		}
		if d.rdb != nil {
			if err := d.rdb.Close(); err != nil {
				helper.Error(err)
			}
		}
	}

	return d, cleanup, nil
}

// NewDataWithDriver wraps already opened handles. rdb may be nil.
func NewDataWithDriver(drv *entsql.Driver, rdb *redis.Client) *Data {
	return &Data{drv: drv, rdb: rdb}
}

func (d *Data) builder() *entsql.DialectBuilder {
	return entsql.Dialect(d.drv.Dialect())
}

func (d *Data) query(ctx context.Context, q entsql.Querier) (*entsql.Rows, error) {
	query, args := q.Query()
	rows := &entsql.Rows{}
	if err := d.drv.Query(ctx, query, args, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (d *Data) exec(ctx context.Context, q entsql.Querier) error {
	query, args := q.Query()
	return d.drv.Exec(ctx, query, args, nil)
}
