package tables

import (
	"context"
	"log/slog"
	"time"

	"github.com/millworks/millwright/pkg/catalog"
	"github.com/millworks/millwright/pkg/errors"
	"github.com/millworks/millwright/pkg/machine"
	"github.com/millworks/millwright/pkg/speeds"
	"github.com/millworks/millwright/pkg/tapdrill"

	"golang.org/x/sync/errgroup"
)

// Paths names the reference documents to load. Machine, Inventory, and
// Speeds are required; FeedsAndSpeeds and TapDrill are optional and may be
// left empty.
type Paths struct {
	Machine        string
	Inventory      string
	Speeds         string
	FeedsAndSpeeds string
	TapDrill       string
}

// Bundle holds everything a resolution session needs. Optional documents
// not named in Paths are left nil.
type Bundle struct {
	Machine        *machine.Config
	Catalog        *catalog.Catalog
	Speeds         speeds.Table
	FeedsAndSpeeds *machine.FeedsAndSpeeds
	TapDrill       tapdrill.Chart
}

// LoadAll loads the named documents in parallel. The first failure cancels
// the remaining loads and is returned.
func LoadAll(ctx context.Context, paths Paths) (*Bundle, error) {
	start := time.Now()

	if paths.Machine == "" || paths.Inventory == "" || paths.Speeds == "" {
		return nil, errors.New(errors.ErrCodeConfig,
			"machine, inventory, and speeds paths are all required")
	}

	bundle := &Bundle{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cfg, err := LoadMachineConfig(gctx, paths.Machine)
		if err != nil {
			return err
		}
		bundle.Machine = cfg
		return nil
	})

	g.Go(func() error {
		inventory, err := LoadInventory(gctx, paths.Inventory)
		if err != nil {
			return err
		}
		bundle.Catalog = catalog.New(inventory)
		return nil
	})

	g.Go(func() error {
		table, err := LoadSpeedTable(gctx, paths.Speeds)
		if err != nil {
			return err
		}
		bundle.Speeds = table
		return nil
	})

	if paths.FeedsAndSpeeds != "" {
		g.Go(func() error {
			fas, err := LoadFeedsAndSpeeds(gctx, paths.FeedsAndSpeeds)
			if err != nil {
				return err
			}
			bundle.FeedsAndSpeeds = fas
			return nil
		})
	}

	if paths.TapDrill != "" {
		g.Go(func() error {
			chart, err := LoadTapDrillChart(gctx, paths.TapDrill)
			if err != nil {
				return err
			}
			bundle.TapDrill = chart
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("loaded reference tables",
		"machine", bundle.Machine.Name,
		"tools", len(bundle.Catalog.Flattened()),
		"materials", len(bundle.Speeds),
		"duration", time.Since(start),
	)
	return bundle, nil
}
