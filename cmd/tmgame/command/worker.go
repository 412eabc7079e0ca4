package command

import (
	"fmt"
	"time"

	"github.com/KalpShah999/TMGame/internal/combat"
	"github.com/KalpShah999/TMGame/internal/commands"
	"github.com/KalpShah999/TMGame/internal/driver"
	"github.com/KalpShah999/TMGame/internal/listener"
	"github.com/KalpShah999/TMGame/internal/messaging"
	"github.com/KalpShah999/TMGame/internal/persist"
	"github.com/KalpShah999/TMGame/internal/session"
	"github.com/KalpShah999/TMGame/internal/world"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load the world content catalog
	catalog, err := cfg.Storage.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	worldState := world.NewState(catalog)

	// Embedded message broker
	natsServer, err := cfg.Nats.BuildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("building nats server: %w", err)
	}

	pub := messaging.NewPublisher(natsServer, worldState)

	engine := combat.NewEngine(catalog, worldState, pub)
	cmdHandler := commands.NewHandler(worldState, engine, pub)

	sessionManager := session.NewManager(worldState, cmdHandler, pub, natsServer)
	connManager := listener.NewConnectionManager(sessionManager)

	// Create Listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(connManager)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	info := world.ServerInfo{}
	if len(cfg.Listeners) > 0 {
		info.Host = cfg.Listeners[0].Host
		info.Port = int(cfg.Listeners[0].Port)
	}

	persistManager := persist.NewManager(worldState, pub, cfg.Saves.Dir, cfg.Saves.File, info)

	// Restore a prior world before accepting connections
	if cfg.Saves.Load != "" {
		if err := persistManager.Load(cfg.Saves.Load); err != nil {
			return nil, fmt.Errorf("loading world: %w", err)
		}
	}

	var driverOpts []driver.GameDriverOpt
	if cfg.TickInterval != "" {
		d, err := time.ParseDuration(cfg.TickInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing tick_interval: %w", err)
		}
		driverOpts = append(driverOpts, driver.WithTickLength(d))
	}

	gameDriver := driver.NewGameDriver([]driver.Manager{
		persistManager,
	}, driverOpts...)

	return service.WorkerList{
		"nats":      natsServer,
		"driver":    gameDriver,
		"persist":   persistManager,
		"listeners": &listeners,
	}, nil
}
