package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Aadhavm10/PremScout/internal/models"
	"github.com/Aadhavm10/PremScout/internal/roster"
)

// Snapshot is one immutable normalized roster. Consumers must treat it as
// read-only; a refresh swaps in a fresh snapshot rather than mutating this one.
type Snapshot struct {
	Gameweek    int             `json:"gameweek"`
	CSVFile     string          `json:"csv_file"`
	TotalRaw    int             `json:"total_players"`
	LastUpdated string          `json:"last_updated"`
	ImportedAt  time.Time       `json:"imported_at"`
	Players     []models.Player `json:"players"`
}

// SnapshotSource is what the API layer needs from the roster service.
type SnapshotSource interface {
	Snapshot() (*Snapshot, bool)
}

// PhotoCodeSource resolves player names to FPL photo codes.
type PhotoCodeSource interface {
	PhotoCodes(ctx context.Context) (map[string]int, error)
}

// SnapshotArchiver persists imported snapshots for later history queries.
type SnapshotArchiver interface {
	SaveSnapshot(snapshot *Snapshot) error
}

var gameweekFilePattern = regexp.MustCompile(`^gameweek_(\d+)_predictions\.csv$`)

// RosterService discovers the latest gameweek predictions file, normalizes it
// and publishes the result as an atomic snapshot. A cron schedule re-imports
// on an interval so a newly dropped file gets picked up without a restart.
type RosterService struct {
	dataDir  string
	photos   PhotoCodeSource
	archiver SnapshotArchiver
	logger   *logrus.Logger
	cron     *cron.Cron

	mu        sync.Mutex
	isRunning bool
	current   atomic.Pointer[Snapshot]
}

func NewRosterService(dataDir string, photos PhotoCodeSource, archiver SnapshotArchiver, logger *logrus.Logger) *RosterService {
	return &RosterService{
		dataDir:  dataDir,
		photos:   photos,
		archiver: archiver,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start schedules periodic refreshes. The caller decides whether to run an
// initial Refresh first.
func (s *RosterService) Start(schedule string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("roster service is already running")
	}

	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.Refresh(context.Background()); err != nil {
			s.logger.Errorf("Scheduled roster refresh failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule roster refresh: %w", err)
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.Infof("Roster service started with schedule %q", schedule)
	return nil
}

func (s *RosterService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false
	s.logger.Info("Roster service stopped")
}

// Snapshot returns the current roster snapshot, or false when no import has
// succeeded yet.
func (s *RosterService) Snapshot() (*Snapshot, bool) {
	snap := s.current.Load()
	return snap, snap != nil
}

// Refresh imports the latest predictions file and swaps the published
// snapshot. Photo-code lookup failures degrade to placeholder avatars and
// never fail the import.
func (s *RosterService) Refresh(ctx context.Context) error {
	path, gameweek, err := latestGameweekFile(s.dataDir)
	if err != nil {
		return err
	}

	rows, err := readRecords(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	if s.photos != nil {
		codes, err := s.photos.PhotoCodes(ctx)
		if err != nil {
			s.logger.Warnf("Photo code lookup failed, serving generated avatars only: %v", err)
		} else {
			attachPhotoCodes(rows, codes)
		}
	}

	players := roster.Normalize(rows)

	snap := &Snapshot{
		Gameweek:    gameweek,
		CSVFile:     filepath.Base(path),
		TotalRaw:    len(rows),
		LastUpdated: lastUpdated(s.dataDir),
		ImportedAt:  time.Now().UTC(),
		Players:     players,
	}
	s.current.Store(snap)

	s.logger.WithFields(logrus.Fields{
		"gameweek": gameweek,
		"file":     snap.CSVFile,
		"raw":      len(rows),
		"players":  len(players),
	}).Info("Roster snapshot imported")

	if s.archiver != nil {
		if err := s.archiver.SaveSnapshot(snap); err != nil {
			s.logger.Errorf("Failed to archive gameweek %d snapshot: %v", gameweek, err)
		}
	}

	return nil
}

// latestGameweekFile picks the highest-numbered gameweek_N_predictions.csv.
// Numeric comparison, not lexicographic: gameweek 10 beats gameweek 9.
func latestGameweekFile(dir string) (string, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read data dir: %w", err)
	}

	best := ""
	bestGW := -1
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := gameweekFilePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		gw, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if gw > bestGW {
			bestGW = gw
			best = entry.Name()
		}
	}

	if best == "" {
		return "", 0, fmt.Errorf("no prediction files found in %s", dir)
	}
	return filepath.Join(dir, best), bestGW, nil
}

// readRecords reads a header-keyed CSV into raw records. Short rows keep the
// fields they have; the normalizer defaults the rest.
func readRecords(path string) ([]roster.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows []roster.RawRecord
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Malformed row: drop it, keep the batch.
			continue
		}
		row := make(roster.RawRecord, len(header))
		for i, key := range header {
			if i < len(fields) {
				row[strings.TrimSpace(key)] = fields[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func attachPhotoCodes(rows []roster.RawRecord, codes map[string]int) {
	for _, row := range rows {
		if code, ok := codes[strings.TrimSpace(row["name"])]; ok && code > 0 {
			row["player_code"] = strconv.Itoa(code)
		}
	}
}

// lastUpdated reads the pipeline's last_updated.txt marker if present.
func lastUpdated(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "last_updated.txt"))
	if err != nil {
		return "Unknown"
	}
	return strings.TrimSpace(string(data))
}
