package app

import (
	"context"
	"fmt"

	"github.com/naveen224793-boop/assignment3/internal/bootstrap"
	"github.com/naveen224793-boop/assignment3/internal/config"
	"github.com/naveen224793-boop/assignment3/internal/employee"
	"github.com/naveen224793-boop/assignment3/internal/shared/connection"
)

// OpenStore connects to the backend selected by cfg.Store.Driver and returns
// the employee repository together with the function that closes it.
// cfg.RequireStore must already have passed.
func OpenStore(ctx context.Context, cfg config.Config) (employee.Repository, bootstrap.CleanupFunc, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, err := connection.ConnectMongo(ctx, cfg.Store.URI, cfg.Store.ConnectTimeout)
		if err != nil {
			return nil, nil, err
		}
		coll := client.Database(cfg.Store.Database).Collection(employee.CollectionName)
		return employee.NewMongoRepository(coll, cfg.ListQueryTimeout), client.Disconnect, nil

	case config.DriverPostgres:
		db, err := connection.ConnectGORM(ctx, cfg.Store.URI, cfg.Store.ConnectTimeout)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return employee.NewGormRepository(db), func(context.Context) error { return sqlDB.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}

// NewEventPublisher returns the Kafka publisher when a broker is configured
// and the no-op publisher otherwise.
func NewEventPublisher(cfg config.Config) (employee.EventPublisher, bootstrap.CleanupFunc) {
	if !cfg.Kafka.Enabled() {
		return employee.NewNoopEventPublisher(), func(context.Context) error { return nil }
	}

	writer := connection.NewKafkaWriter(cfg.Kafka.Broker)
	return employee.NewKafkaEventPublisher(writer, cfg.Kafka.Topic),
		func(context.Context) error { return writer.Close() }
}
