package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/console"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/ledger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			ledger.NodeID,
			fs.FinderNodeID,
			fs.FileSystemNodeID,
			shell.NodeID,
			fs.HasherNodeID,
			console.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.StoreOpener](ctx)
	if err != nil {
		return nil, err
	}

	finder, err := graft.Dep[ports.TestFinder](ctx)
	if err != nil {
		return nil, err
	}

	fileSystem, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	journal, err := graft.Dep[ports.Journal](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, opener, finder, fileSystem, executor, hasher, reporter, journal, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
