package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"HunTianLing/internal/model"
	"HunTianLing/internal/utils"

	_ "github.com/mattn/go-sqlite3"
)

// Store 扫描历史存储，基于SQLite
type Store struct {
	db     *sql.DB
	path   string
	logger *utils.Logger
}

// Summary 单次历史扫描的摘要
type Summary struct {
	ID         int64     `json:"id"`
	Target     string    `json:"target"`
	StartedAt  time.Time `json:"started_at"`
	DurationMS int64     `json:"duration_ms"`
	PortsTotal int       `json:"ports_total"`
	PortsOpen  int       `json:"ports_open"`
}

// NewStore 打开（必要时创建）历史数据库
func NewStore(dbPath string) (*Store, error) {
	logger := utils.NewLogger("history")

	// 确保目录存在
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("创建数据库目录失败: %v", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("打开数据库失败: %v", err)
	}

	store := &Store{
		db:     db,
		path:   dbPath,
		logger: logger,
	}

	if err := store.initTables(); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *Store) initTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		target TEXT NOT NULL,
		started_at TIMESTAMP NOT NULL,
		duration_ms INTEGER,
		ports_total INTEGER,
		ports_open INTEGER,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS scan_ports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scan_id INTEGER NOT NULL,
		port INTEGER NOT NULL,
		reachable INTEGER NOT NULL,
		FOREIGN KEY (scan_id) REFERENCES scans(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_scans_target ON scans(target);
	CREATE INDEX IF NOT EXISTS idx_scan_ports_scan ON scan_ports(scan_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveScan 持久化一次扫描结果，返回记录ID
func (s *Store) SaveScan(target string, startedAt time.Time, duration time.Duration, results []model.ProbeResult) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	open := 0
	for _, r := range results {
		if r.Reachable {
			open++
		}
	}

	res, err := tx.Exec(`
		INSERT INTO scans (target, started_at, duration_ms, ports_total, ports_open)
		VALUES (?, ?, ?, ?, ?)`,
		target, startedAt, duration.Milliseconds(), len(results), open,
	)
	if err != nil {
		return 0, err
	}

	scanID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, r := range results {
		reachable := 0
		if r.Reachable {
			reachable = 1
		}
		if _, err := tx.Exec(`
			INSERT INTO scan_ports (scan_id, port, reachable)
			VALUES (?, ?, ?)`,
			scanID, r.Port, reachable,
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.logger.Debug("已保存扫描记录 #%d: %s (%d端口, %d开放)", scanID, target, len(results), open)
	return scanID, nil
}

// RecentScans 查询最近的扫描摘要，按时间倒序
func (s *Store) RecentScans(limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(`
		SELECT id, target, started_at, duration_ms, ports_total, ports_open
		FROM scans
		ORDER BY started_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.Target, &sum.StartedAt,
			&sum.DurationMS, &sum.PortsTotal, &sum.PortsOpen); err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}

	return summaries, rows.Err()
}

// ScanPorts 查询某次历史扫描的端口明细
func (s *Store) ScanPorts(scanID int64) ([]model.ProbeResult, error) {
	rows, err := s.db.Query(`
		SELECT port, reachable FROM scan_ports WHERE scan_id = ? ORDER BY id`, scanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.ProbeResult
	for rows.Next() {
		var port uint16
		var reachable int
		if err := rows.Scan(&port, &reachable); err != nil {
			return nil, err
		}
		results = append(results, model.ProbeResult{Port: port, Reachable: reachable == 1})
	}

	return results, rows.Err()
}

// Close 关闭数据库
func (s *Store) Close() error {
	return s.db.Close()
}
