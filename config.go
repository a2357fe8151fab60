package geo2wall

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v2"
)

// BuildingConfig describes several files of the same building, e.g. one per
// floor. All floors are put into the frame of the first one.
type BuildingConfig struct {
	Name   string  `yaml:"name"`
	CRS    string  `yaml:"crs"`
	Layer  string  `yaml:"layer"`
	Angle  float64 `yaml:"angle"`
	Scale  float64 `yaml:"scale"`
	Floors []Floor `yaml:"floors"`
}

type Floor struct {
	Name  string  `yaml:"name"`
	Path  string  `yaml:"path"`
	Layer string  `yaml:"layer"`
	Scale float64 `yaml:"scale"`
}

func ReadBuildingConfig(filename string) (*BuildingConfig, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	cfg, err := ParseBuildingConfig(fp)
	if err != nil {
		return nil, fmt.Errorf("Failed to read %s: %w", filename, err)
	}

	// Floor paths are relative to the config file
	dir := filepath.Dir(filename)
	for i, f := range cfg.Floors {
		if !filepath.IsAbs(f.Path) {
			cfg.Floors[i].Path = filepath.Join(dir, f.Path)
		}
	}
	return cfg, nil
}

func ParseBuildingConfig(in io.Reader) (*BuildingConfig, error) {
	cfg := &BuildingConfig{
		CRS:   DefaultCRS,
		Layer: DefaultLayer,
	}
	err := yaml.NewDecoder(in).Decode(cfg)
	if err != nil {
		return nil, err
	}

	if len(cfg.Floors) == 0 {
		return nil, errors.New("No floors configured")
	}
	for i, f := range cfg.Floors {
		if f.Path == "" {
			return nil, fmt.Errorf("Floor %d has no path", i)
		}
		if f.Name == "" {
			cfg.Floors[i].Name = filepath.Base(f.Path)
		}
	}
	return cfg, nil
}

func (c *BuildingConfig) floorOptions(f Floor) Options {
	opts := Options{
		Path:  f.Path,
		Layer: c.Layer,
		CRS:   c.CRS,
		Angle: c.Angle,
		Scale: c.Scale,
	}
	if f.Layer != "" {
		opts.Layer = f.Layer
	}
	if f.Scale != 0 {
		opts.Scale = f.Scale
	}
	return opts
}

type frameFile struct {
	Angle float64 `yaml:"angle"`
	Frame `yaml:",inline"`
}

// ReadFrame reads a frame written by WriteFrame, together with the rotation
// angle it was computed for.
func ReadFrame(filename string) (Frame, float64, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Frame{}, 0, err
	}

	f := &frameFile{}
	err = yaml.Unmarshal(data, f)
	if err != nil {
		return Frame{}, 0, fmt.Errorf("Failed to read frame %s: %w", filename, err)
	}
	return f.Frame, f.Angle, nil
}

func WriteFrame(filename string, frame Frame, angle float64) error {
	data, err := yaml.Marshal(&frameFile{Angle: angle, Frame: frame})
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
