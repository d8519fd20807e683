package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/buddhabrot/internal/config"
	"github.com/san-kum/buddhabrot/internal/density"
)

var channelNames = [density.NumChannels]string{"red", "green", "blue"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Width         int       `json:"width"`
	Height        int       `json:"height"`
	Seed          int64     `json:"seed"`
	Normalization string    `json:"normalization"`
	Iterations    [3]int    `json:"iterations"`
	Samples       [3]int64  `json:"samples"`
	SharedMax     uint64    `json:"shared_max"`
	PassMax       [3]uint64 `json:"pass_max"`
}

// Save persists a finished render: metadata.json plus one raw-counter CSV
// per channel under a fresh run directory. Returns the run ID.
func (s *Store) Save(cfg *config.Config, res *density.Result) (string, error) {
	runID := fmt.Sprintf("render_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Timestamp:     time.Now(),
		Width:         cfg.Width,
		Height:        cfg.Height,
		Seed:          cfg.Seed,
		Normalization: cfg.Normalization,
		SharedMax:     res.SharedMax,
	}
	for c := 0; c < density.NumChannels; c++ {
		meta.PassMax[c] = res.PassMax[c]
	}
	meta.Iterations = [3]int{cfg.Red.Iterations, cfg.Green.Iterations, cfg.Blue.Iterations}
	meta.Samples = [3]int64{cfg.Red.Samples, cfg.Green.Samples, cfg.Blue.Samples}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	for c := 0; c < density.NumChannels; c++ {
		if err := writeGridCSV(filepath.Join(runDir, channelNames[c]+".csv"), res.Raw[c]); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func writeGridCSV(path string, g *density.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	row := make([]string, g.Width())
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			row[c] = strconv.FormatUint(g.At(r, c), 10)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadGrid reads one channel's raw counters back from a saved run.
func (s *Store) LoadGrid(runID, channel string) (*density.Grid, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, channel+".csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty grid file for channel %s", channel)
	}

	g := density.NewGrid(len(records[0]), len(records))
	for row, record := range records {
		for col, field := range record {
			v, err := strconv.ParseUint(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", row, col, err)
			}
			g.Set(row, col, v)
		}
	}
	return g, nil
}
