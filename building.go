package geo2wall

import (
	"fmt"
	"log"

	"github.com/cheggaaa/pb"
	"golang.org/x/sync/errgroup"
)

type Building struct {
	Loader   Loader
	Config   *BuildingConfig
	Progress bool
}

type FloorWalls struct {
	Floor Floor
	Walls *Walls
}

type BuildingResult struct {
	Name   string
	CRS    string
	Angle  float64
	Frame  Frame
	Floors []FloorWalls
}

// Extract processes the first floor to fix the frame, then the remaining
// floors in parallel within that frame. Floors keep their configured order.
func (b *Building) Extract() (*BuildingResult, error) {
	cfg := b.Config
	if len(cfg.Floors) == 0 {
		return nil, &EmptyInputError{Stage: "building"}
	}

	var bar *pb.ProgressBar
	if b.Progress {
		bar = pb.New(len(cfg.Floors)).Prefix("Floors ")
		bar.Start()
		defer bar.Finish()
	}

	first := cfg.Floors[0]
	log.Printf("Extracting %s (reference floor)", first.Name)
	res, err := Extract(b.Loader, cfg.floorOptions(first))
	if err != nil {
		return nil, fmt.Errorf("Floor %s: %w", first.Name, err)
	}
	if bar != nil {
		bar.Increment()
	}

	out := &BuildingResult{
		Name:   cfg.Name,
		CRS:    res.CRS,
		Angle:  cfg.Angle,
		Frame:  res.Frame,
		Floors: make([]FloorWalls, len(cfg.Floors)),
	}
	out.Floors[0] = FloorWalls{Floor: first, Walls: res.Walls}

	var g errgroup.Group
	for i := 1; i < len(cfg.Floors); i++ {
		i, floor := i, cfg.Floors[i]
		g.Go(func() error {
			opts := cfg.floorOptions(floor)
			frame := out.Frame.Options(cfg.Angle)
			opts.Center = frame.Center
			opts.Offset = frame.Offset

			log.Printf("Extracting %s", floor.Name)
			res, err := Extract(b.Loader, opts)
			if err != nil {
				return fmt.Errorf("Floor %s: %w", floor.Name, err)
			}
			out.Floors[i] = FloorWalls{Floor: floor, Walls: res.Walls}
			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return nil, err
	}
	return out, nil
}
